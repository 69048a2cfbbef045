// Package gantt turns a schedule response into the flat row form a timeline
// chart consumes.
package gantt

import (
	"time"

	"github.com/kilianp07/rsviz/core/model"
)

// Row is one bar of the Gantt chart: a single trip of a single vehicle.
type Row struct {
	Task     string    `json:"task"` // vehicle id, or vehicle type when no id exists
	Start    time.Time `json:"start"`
	Finish   time.Time `json:"finish"`
	Category string    `json:"category"` // trip type wire name, used as color key
}

// Flatten produces one Row per (schedule item, trip) pair, in input order.
// Start maps to the trip's departure and Finish to its arrival.
func Flatten(resp *model.Response) []Row {
	rows := make([]Row, 0, resp.TripCount())
	for _, item := range resp.Schedule {
		for _, trip := range item.Trips {
			rows = append(rows, Row{
				Task:     item.Label(),
				Start:    trip.DepartureTime,
				Finish:   trip.ArrivalTime,
				Category: trip.Type.String(),
			})
		}
	}
	return rows
}
