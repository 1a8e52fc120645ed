package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_BlocksSlot(t *testing.T) {
	tests := []struct {
		status BookingStatus
		blocks bool
	}{
		{StatusConfirmed, true},
		{StatusPending, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.blocks, b.BlocksSlot())
		})
	}
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBooking_CanBeRescheduled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeRescheduled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeRescheduled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeRescheduled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeRescheduled())
}

func TestBooking_StartsAt(t *testing.T) {
	b := &Booking{
		BookingDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:30",
	}

	assert.Equal(t, time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC), b.StartsAt())
}

func TestBarber_IsBookable(t *testing.T) {
	assert.True(t, (&Barber{Active: true}).IsBookable())
	assert.False(t, (&Barber{Active: false}).IsBookable())
}

func TestWorkingDayConstants(t *testing.T) {
	assert.True(t, OpenTime.IsBefore(CloseTime))
	assert.Equal(t, 30, SlotDurationMinutes)
}
