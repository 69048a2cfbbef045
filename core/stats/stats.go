// Package stats computes summary figures over an imported schedule.
package stats

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/rsviz/core/model"
)

// Summary aggregates a schedule for terminal reporting.
type Summary struct {
	Vehicles      int
	Trips         int
	ServiceTrips  int
	DeadheadTrips int

	// Trip duration statistics in minutes.
	MeanTripMinutes float64
	MaxTripMinutes  float64

	// SpanStart and SpanEnd delimit the whole operating day: the earliest
	// departure and the latest arrival across all tours.
	SpanStart time.Time
	SpanEnd   time.Time
}

// Summarize walks every trip of the response once. A response without trips
// yields a zero-valued summary apart from the vehicle count.
func Summarize(resp *model.Response) Summary {
	s := Summary{Vehicles: len(resp.Schedule)}

	var minutes []float64
	for _, item := range resp.Schedule {
		for _, trip := range item.Trips {
			s.Trips++
			if trip.Type == model.TripService {
				s.ServiceTrips++
			} else {
				s.DeadheadTrips++
			}
			minutes = append(minutes, trip.Duration().Minutes())
			if s.SpanStart.IsZero() || trip.DepartureTime.Before(s.SpanStart) {
				s.SpanStart = trip.DepartureTime
			}
			if trip.ArrivalTime.After(s.SpanEnd) {
				s.SpanEnd = trip.ArrivalTime
			}
		}
	}
	if len(minutes) > 0 {
		s.MeanTripMinutes = stat.Mean(minutes, nil)
		s.MaxTripMinutes = floats.Max(minutes)
	}
	return s
}
