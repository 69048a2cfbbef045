package model

import (
	"strings"
	"time"
)

// TripType classifies a movement segment of a vehicle tour.
type TripType int

const (
	TripService TripType = iota
	TripDeadhead
)

// String returns the wire name of the trip type as emitted by the solver.
func (t TripType) String() string {
	switch t {
	case TripService:
		return "ServiceTrip"
	case TripDeadhead:
		return "DeadHeadTrip"
	default:
		return "unknown"
	}
}

// TripTypeFromKey derives the trip type from a tour entry's JSON key. Any key
// containing the substring "service" (case-insensitive) is a service trip;
// everything else is a deadhead. The solver encodes the type in the key name
// rather than a discriminator field, so this rule must not be tightened.
func TripTypeFromKey(key string) TripType {
	if strings.Contains(strings.ToLower(key), "service") {
		return TripService
	}
	return TripDeadhead
}

// Trip is one movement segment of a vehicle's tour.
type Trip struct {
	ID            string // empty when the solver did not assign one
	Type          TripType
	Origin        string
	Destination   string
	DepartureTime time.Time
	ArrivalTime   time.Time
}

// Duration returns the scheduled travel time of the trip. The importer does
// not validate chronology, so this can be negative for malformed input.
func (t Trip) Duration() time.Duration {
	return t.ArrivalTime.Sub(t.DepartureTime)
}

// ScheduleItem is one vehicle's full day of work. Trips are kept in input
// order, which is the vehicle's operational sequence.
type ScheduleItem struct {
	VehicleID   string // only present in the legacy schema
	VehicleType string
	StartDepot  string
	EndDepot    string
	Trips       []Trip
}

// Label returns the identifier to display for this vehicle: the vehicle id
// when the legacy schema provides one, the vehicle type otherwise.
func (s ScheduleItem) Label() string {
	if s.VehicleID != "" {
		return s.VehicleID
	}
	return s.VehicleType
}

// ObjectiveValue carries the solver-reported quality metrics of a schedule.
type ObjectiveValue struct {
	NumberOfUnservedPassengers int
	NumberOfVehicles           int
	SeatDistanceTraveled       int
}

// Response is the root of a solver output document.
type Response struct {
	// ObjectiveValue is nil for documents produced by older solver versions.
	ObjectiveValue *ObjectiveValue
	Schedule       []ScheduleItem
}

// TripCount returns the total number of trips across all schedule items.
func (r Response) TripCount() int {
	n := 0
	for _, item := range r.Schedule {
		n += len(item.Trips)
	}
	return n
}
