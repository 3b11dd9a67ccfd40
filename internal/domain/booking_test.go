package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"planned to arrived", StatusPlanned, StatusArrived, true},
		{"planned to no_show", StatusPlanned, StatusNoShow, true},
		{"planned to cancelled", StatusPlanned, StatusCancelled, true},
		{"planned to planned", StatusPlanned, StatusPlanned, false},
		{"arrived is terminal", StatusArrived, StatusCancelled, false},
		{"no_show is terminal", StatusNoShow, StatusArrived, false},
		{"cancelled is terminal", StatusCancelled, StatusPlanned, false},
		{"unknown target", StatusPlanned, BookingStatus("rescheduled"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPlanned}).IsActive())
	assert.True(t, (&Booking{Status: StatusArrived}).IsActive())
	assert.True(t, (&Booking{Status: StatusNoShow}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBookingOverlaps_HalfOpenIntervals(t *testing.T) {
	at := func(h int) time.Time {
		return time.Date(2026, 3, 2, h, 0, 0, 0, time.UTC)
	}

	b := &Booking{StartAt: at(10), EndAt: at(11)}

	assert.True(t, b.Overlaps(at(10), at(11)))
	assert.True(t, b.Overlaps(at(9), at(12)))
	assert.True(t, b.Overlaps(at(10), at(10).Add(30*time.Minute)))

	// Соприкасающиеся границы пересечением не считаются
	assert.False(t, b.Overlaps(at(9), at(10)))
	assert.False(t, b.Overlaps(at(11), at(12)))
}

func TestHoldIsExpired(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	assert.False(t, (&BookingHold{ExpiresAt: now.Add(time.Second)}).IsExpired(now))
	assert.True(t, (&BookingHold{ExpiresAt: now}).IsExpired(now))
	assert.True(t, (&BookingHold{ExpiresAt: now.Add(-time.Second)}).IsExpired(now))
}
