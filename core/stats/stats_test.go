package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/rsviz/core/model"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(&model.Response{})
	assert.Equal(t, 0, s.Vehicles)
	assert.Equal(t, 0, s.Trips)
	assert.Zero(t, s.MeanTripMinutes)
	assert.True(t, s.SpanStart.IsZero())
}

func TestSummarize(t *testing.T) {
	day := func(h, m int) time.Time {
		return time.Date(2024, 1, 1, h, m, 0, 0, time.UTC)
	}
	resp := &model.Response{
		Schedule: []model.ScheduleItem{
			{
				VehicleType: "Standard",
				Trips: []model.Trip{
					{Type: model.TripDeadhead, DepartureTime: day(5, 30), ArrivalTime: day(5, 40)},
					{Type: model.TripService, DepartureTime: day(6, 0), ArrivalTime: day(6, 50)},
				},
			},
			{
				VehicleType: "DoubleDecker",
				Trips: []model.Trip{
					{Type: model.TripService, DepartureTime: day(7, 0), ArrivalTime: day(7, 30)},
				},
			},
		},
	}

	s := Summarize(resp)
	require.Equal(t, 2, s.Vehicles)
	assert.Equal(t, 3, s.Trips)
	assert.Equal(t, 2, s.ServiceTrips)
	assert.Equal(t, 1, s.DeadheadTrips)
	assert.InDelta(t, 30.0, s.MeanTripMinutes, 1e-9) // (10+50+30)/3
	assert.InDelta(t, 50.0, s.MaxTripMinutes, 1e-9)
	assert.Equal(t, day(5, 30), s.SpanStart)
	assert.Equal(t, day(7, 30), s.SpanEnd)
}
