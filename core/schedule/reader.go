// Package schedule imports solver output documents into the schedule model.
//
// Two historical schema variants exist: older solver versions emit a
// vehicleId per schedule item and no objectiveValue; newer versions emit an
// objectiveValue and identify vehicles by type only. Both are accepted by the
// same reader, detected by the presence of the objectiveValue key.
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kilianp07/rsviz/core/model"
)

type rawObjective struct {
	NumberOfUnservedPassengers *int `json:"numberOfUnservedPassengers"`
	NumberOfVehicles           *int `json:"numberOfVehicles"`
	SeatDistanceTraveled       *int `json:"seatDistanceTraveled"`
}

type rawTrip struct {
	ID            *string `json:"id"`
	Origin        *string `json:"origin"`
	Destination   *string `json:"destination"`
	DepartureTime *string `json:"departure_time"`
	ArrivalTime   *string `json:"arrival_time"`
}

type rawScheduleItem struct {
	VehicleID   *string               `json:"vehicleId"`
	VehicleType *string               `json:"vehicleType"`
	StartDepot  *string               `json:"startDepot"`
	EndDepot    *string               `json:"endDepot"`
	Tour        *[]map[string]rawTrip `json:"tour"`
}

type rawResponse struct {
	ObjectiveValue *rawObjective      `json:"objectiveValue"`
	Schedule       *[]rawScheduleItem `json:"schedule"`
}

// ImportResponse reads the JSON document at path and converts it into a
// Response. The call fails atomically: on any error no partial Response is
// returned. Errors wrap ErrFileAccess, ErrMalformedInput or
// ErrSchemaValidation and can be matched with errors.Is.
func ImportResponse(path string) (*model.Response, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}

	var raw rawResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %v", ErrSchemaValidation, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if raw.Schedule == nil {
		return nil, fmt.Errorf("%w: missing schedule array", ErrSchemaValidation)
	}

	resp := &model.Response{}
	if raw.ObjectiveValue != nil {
		ov, err := buildObjectiveValue(*raw.ObjectiveValue)
		if err != nil {
			return nil, err
		}
		resp.ObjectiveValue = ov
	}

	for i, item := range *raw.Schedule {
		built, err := buildScheduleItem(item)
		if err != nil {
			return nil, fmt.Errorf("schedule[%d]: %w", i, err)
		}
		resp.Schedule = append(resp.Schedule, built)
	}
	return resp, nil
}

func buildObjectiveValue(raw rawObjective) (*model.ObjectiveValue, error) {
	switch {
	case raw.NumberOfUnservedPassengers == nil:
		return nil, fmt.Errorf("%w: objectiveValue missing numberOfUnservedPassengers", ErrSchemaValidation)
	case raw.NumberOfVehicles == nil:
		return nil, fmt.Errorf("%w: objectiveValue missing numberOfVehicles", ErrSchemaValidation)
	case raw.SeatDistanceTraveled == nil:
		return nil, fmt.Errorf("%w: objectiveValue missing seatDistanceTraveled", ErrSchemaValidation)
	}
	return &model.ObjectiveValue{
		NumberOfUnservedPassengers: *raw.NumberOfUnservedPassengers,
		NumberOfVehicles:           *raw.NumberOfVehicles,
		SeatDistanceTraveled:       *raw.SeatDistanceTraveled,
	}, nil
}

func buildScheduleItem(raw rawScheduleItem) (model.ScheduleItem, error) {
	var item model.ScheduleItem
	switch {
	case raw.VehicleType == nil:
		return item, fmt.Errorf("%w: missing vehicleType", ErrSchemaValidation)
	case raw.StartDepot == nil:
		return item, fmt.Errorf("%w: missing startDepot", ErrSchemaValidation)
	case raw.EndDepot == nil:
		return item, fmt.Errorf("%w: missing endDepot", ErrSchemaValidation)
	case raw.Tour == nil:
		return item, fmt.Errorf("%w: missing tour", ErrSchemaValidation)
	}
	item.VehicleType = *raw.VehicleType
	item.StartDepot = *raw.StartDepot
	item.EndDepot = *raw.EndDepot
	if raw.VehicleID != nil {
		item.VehicleID = *raw.VehicleID
	}

	// Tour order is the vehicle's operational sequence and must survive the
	// import untouched.
	for i, entry := range *raw.Tour {
		trip, err := buildTrip(entry)
		if err != nil {
			return item, fmt.Errorf("tour[%d]: %w", i, err)
		}
		item.Trips = append(item.Trips, trip)
	}
	return item, nil
}

func buildTrip(entry map[string]rawTrip) (model.Trip, error) {
	var trip model.Trip
	if len(entry) != 1 {
		return trip, fmt.Errorf("%w: tour entry must have exactly one key, got %d", ErrSchemaValidation, len(entry))
	}
	for key, raw := range entry {
		switch {
		case raw.Origin == nil:
			return trip, fmt.Errorf("%w: %s missing origin", ErrSchemaValidation, key)
		case raw.Destination == nil:
			return trip, fmt.Errorf("%w: %s missing destination", ErrSchemaValidation, key)
		case raw.DepartureTime == nil:
			return trip, fmt.Errorf("%w: %s missing departure_time", ErrSchemaValidation, key)
		case raw.ArrivalTime == nil:
			return trip, fmt.Errorf("%w: %s missing arrival_time", ErrSchemaValidation, key)
		}
		dep, err := parseTimestamp(*raw.DepartureTime)
		if err != nil {
			return trip, fmt.Errorf("%w: %s departure_time %q: %v", ErrSchemaValidation, key, *raw.DepartureTime, err)
		}
		arr, err := parseTimestamp(*raw.ArrivalTime)
		if err != nil {
			return trip, fmt.Errorf("%w: %s arrival_time %q: %v", ErrSchemaValidation, key, *raw.ArrivalTime, err)
		}
		trip.Type = model.TripTypeFromKey(key)
		trip.Origin = *raw.Origin
		trip.Destination = *raw.Destination
		trip.DepartureTime = dep
		trip.ArrivalTime = arr
		if raw.ID != nil {
			trip.ID = *raw.ID
		}
	}
	return trip, nil
}

// parseTimestamp accepts RFC 3339 timestamps as well as the zone-less
// ISO-8601 form the solver emits ("2024-01-01T08:00:00").
func parseTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
