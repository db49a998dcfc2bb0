//go:build integration

package integration

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gigmate/gigmate/internal/models"
	"github.com/gigmate/gigmate/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two concurrent requests for the same seat: exactly one wins, the loser
// gets ErrSeatTaken.
func TestConcurrentSeatAllocation(t *testing.T) {
	cleanTables()
	event := createTestEvent(t, "Linkin Park: From Zero World Tour", nil)
	show := createTestShow(t, event.ID, time.Date(2026, 9, 1, 19, 30, 0, 0, time.UTC))
	holderA := createTestHolder(t, 1)
	holderB := createTestHolder(t, 2)
	svc := newBookingService()

	seat := "A12"
	holders := []uint{holderA.ID, holderB.ID}
	errs := make([]error, 2)

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(t.Context(), service.CreateBookingInput{
				ShowID:         show.ID,
				TicketHolderID: holders[i],
				Section:        "Stalls",
				SeatNumber:     &seat,
			})
		}(i)
	}
	wg.Wait()

	var taken, ok int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, service.ErrSeatTaken):
			taken++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, taken)

	var count int64
	testDB.Model(&models.Booking{}).Where("show_id = ?", show.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

// Venue capacity 2, three concurrent general-admission requests: two
// succeed, one gets ErrCapacityExceeded.
func TestConcurrentCapacityAllocation(t *testing.T) {
	cleanTables()
	venue := createTestVenue(t, "Tiny Room", 2)
	event := createTestEvent(t, "Acoustic Night", &venue.ID)
	show := createTestShow(t, event.ID, time.Date(2026, 9, 2, 20, 0, 0, 0, time.UTC))
	svc := newBookingService()

	total := 3
	holders := make([]uint, total)
	for i := 0; i < total; i++ {
		holders[i] = createTestHolder(t, 10+i).ID
	}

	errs := make([]error, total)
	var wg sync.WaitGroup
	wg.Add(total)
	for i := 0; i < total; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(t.Context(), service.CreateBookingInput{
				ShowID:         show.ID,
				TicketHolderID: holders[i],
				Section:        "GA",
			})
		}(i)
	}
	wg.Wait()

	var full, ok int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, service.ErrCapacityExceeded):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 2, ok)
	assert.Equal(t, 1, full)
}

// A holder may hold at most one active booking per show; a cancelled
// booking frees the slot.
func TestDoubleBookingRejected(t *testing.T) {
	cleanTables()
	event := createTestEvent(t, "Halsey: For My Last Trick", nil)
	show := createTestShow(t, event.ID, time.Date(2026, 9, 3, 19, 0, 0, 0, time.UTC))
	holder := createTestHolder(t, 20)
	svc := newBookingService()

	first, err := svc.CreateBooking(t.Context(), service.CreateBookingInput{
		ShowID:         show.ID,
		TicketHolderID: holder.ID,
		Section:        "GA",
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking(t.Context(), service.CreateBookingInput{
		ShowID:         show.ID,
		TicketHolderID: holder.ID,
		Section:        "GA",
	})
	assert.ErrorIs(t, err, service.ErrAlreadyBooked)

	_, err = svc.CancelBooking(t.Context(), first.ID)
	require.NoError(t, err)

	_, err = svc.CreateBooking(t.Context(), service.CreateBookingInput{
		ShowID:         show.ID,
		TicketHolderID: holder.ID,
		Section:        "GA",
	})
	assert.NoError(t, err)
}

// A cancelled seat is immediately re-bookable by someone else.
func TestCancelledSeatIsReusable(t *testing.T) {
	cleanTables()
	event := createTestEvent(t, "Opera Gala", nil)
	show := createTestShow(t, event.ID, time.Date(2026, 9, 4, 19, 0, 0, 0, time.UTC))
	holderA := createTestHolder(t, 30)
	holderB := createTestHolder(t, 31)
	svc := newBookingService()

	seat := "B7"
	first, err := svc.CreateBooking(t.Context(), service.CreateBookingInput{
		ShowID:         show.ID,
		TicketHolderID: holderA.ID,
		Section:        "Balcony",
		SeatNumber:     &seat,
	})
	require.NoError(t, err)

	_, err = svc.CancelBooking(t.Context(), first.ID)
	require.NoError(t, err)

	second, err := svc.CreateBooking(t.Context(), service.CreateBookingInput{
		ShowID:         show.ID,
		TicketHolderID: holderB.ID,
		Section:        "Balcony",
		SeatNumber:     &seat,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, second.Status)
	assert.NotEqual(t, first.Reference, second.Reference)
}

// Bookings against cancelled shows are refused outright.
func TestBookingOnCancelledShow(t *testing.T) {
	cleanTables()
	event := createTestEvent(t, "Cancelled Gig", nil)
	show := createTestShow(t, event.ID, time.Date(2026, 9, 5, 19, 0, 0, 0, time.UTC))
	holder := createTestHolder(t, 40)

	_, err := newCascadeService().CancelShow(t.Context(), show.ID)
	require.NoError(t, err)

	_, err = newBookingService().CreateBooking(t.Context(), service.CreateBookingInput{
		ShowID:         show.ID,
		TicketHolderID: holder.ID,
		Section:        "GA",
	})
	assert.ErrorIs(t, err, service.ErrShowCancelled)
}

// An event without a venue has no capacity bound.
func TestNoVenueNoCapacityBound(t *testing.T) {
	cleanTables()
	event := createTestEvent(t, "Secret Location Show", nil)
	show := createTestShow(t, event.ID, time.Date(2026, 9, 6, 19, 0, 0, 0, time.UTC))
	svc := newBookingService()

	for i := 0; i < 5; i++ {
		holder := createTestHolder(t, 50+i)
		_, err := svc.CreateBooking(t.Context(), service.CreateBookingInput{
			ShowID:         show.ID,
			TicketHolderID: holder.ID,
			Section:        "GA",
		})
		require.NoError(t, err)
	}
}
