package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowStatusTransitions(t *testing.T) {
	tests := []struct {
		from    ShowStatus
		to      ShowStatus
		allowed bool
	}{
		{ShowScheduled, ShowRescheduled, true},
		{ShowScheduled, ShowCancelled, true},
		{ShowRescheduled, ShowScheduled, true},
		{ShowRescheduled, ShowCancelled, true},
		{ShowCancelled, ShowScheduled, false},
		{ShowCancelled, ShowRescheduled, false},
		{ShowCancelled, ShowCancelled, false},
		{ShowScheduled, ShowScheduled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingPending, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCancelled, BookingPending, false},
		{BookingCancelled, BookingCancelled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, ShowScheduled.Valid())
	assert.True(t, BookingPending.Valid())
	assert.False(t, ShowStatus("POSTPONED").Valid())
	assert.False(t, BookingStatus("REFUNDED").Valid())
}

func TestBookingActive(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingPending}).Active())
	assert.True(t, (&Booking{Status: BookingConfirmed}).Active())
	assert.False(t, (&Booking{Status: BookingCancelled}).Active())
}
