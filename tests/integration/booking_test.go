//go:build integration

package integration

import (
	"testing"
	"time"

	"github.com/gigmate/gigmate/internal/models"
	"github.com/gigmate/gigmate/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PENDING → CONFIRMED → CANCELLED walks the status machine; no edge leaves
// CANCELLED.
func TestBookingLifecycle(t *testing.T) {
	cleanTables()
	event := createTestEvent(t, "Lifecycle Gig", nil)
	show := createTestShow(t, event.ID, time.Date(2026, 11, 1, 19, 0, 0, 0, time.UTC))
	holder := createTestHolder(t, 1)
	svc := newBookingService()

	booking := bookFor(t, svc, show.ID, holder.ID)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.NotEmpty(t, booking.Reference)

	confirmed, err := svc.ConfirmBooking(t.Context(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)

	cancelled, err := svc.CancelBooking(t.Context(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)

	_, err = svc.ConfirmBooking(t.Context(), booking.ID)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}

func TestConfirmTwiceRejected(t *testing.T) {
	cleanTables()
	event := createTestEvent(t, "Confirm Twice", nil)
	show := createTestShow(t, event.ID, time.Date(2026, 11, 2, 19, 0, 0, 0, time.UTC))
	holder := createTestHolder(t, 2)
	svc := newBookingService()

	booking := bookFor(t, svc, show.ID, holder.ID)

	_, err := svc.ConfirmBooking(t.Context(), booking.ID)
	require.NoError(t, err)

	_, err = svc.ConfirmBooking(t.Context(), booking.ID)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}

// Hard delete is refused while the booking is active and allowed after
// cancellation. Cancelled rows otherwise persist.
func TestDeleteBooking(t *testing.T) {
	cleanTables()
	event := createTestEvent(t, "Delete Gig", nil)
	show := createTestShow(t, event.ID, time.Date(2026, 11, 3, 19, 0, 0, 0, time.UTC))
	holder := createTestHolder(t, 3)
	svc := newBookingService()

	booking := bookFor(t, svc, show.ID, holder.ID)

	err := svc.DeleteBooking(t.Context(), booking.ID)
	assert.ErrorIs(t, err, service.ErrBookingActive)

	_, err = svc.CancelBooking(t.Context(), booking.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(t.Context(), booking.ID))

	var count int64
	testDB.Model(&models.Booking{}).Where("id = ?", booking.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

// Paginated listing is ordered and stable: 25 bookings at 10 per page give
// pages of 10, 10, 5, and an empty page 4.
func TestListBookingsPagination(t *testing.T) {
	cleanTables()
	event := createTestEvent(t, "Pagination Gig", nil)
	show := createTestShow(t, event.ID, time.Date(2026, 11, 4, 19, 0, 0, 0, time.UTC))
	svc := newBookingService()

	for i := 0; i < 25; i++ {
		bookFor(t, svc, show.ID, createTestHolder(t, 100+i).ID)
	}

	page1, err := svc.ListBookings(t.Context(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, page1.Items, 10)
	assert.Equal(t, int64(25), page1.Total)

	page3, err := svc.ListBookings(t.Context(), 3, 10)
	require.NoError(t, err)
	assert.Len(t, page3.Items, 5)

	page4, err := svc.ListBookings(t.Context(), 4, 10)
	require.NoError(t, err)
	assert.Empty(t, page4.Items)
	assert.Equal(t, int64(25), page4.Total)

	// Ascending id order, no overlap between pages.
	page2, err := svc.ListBookings(t.Context(), 2, 10)
	require.NoError(t, err)
	assert.Less(t, page1.Items[9].ID, page2.Items[0].ID)
	assert.Less(t, page2.Items[9].ID, page3.Items[0].ID)
}

func TestListBookingsInvalidPage(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	_, err := svc.ListBookings(t.Context(), 0, 10)
	assert.ErrorIs(t, err, service.ErrInvalidPagination)

	_, err = svc.ListBookings(t.Context(), 1, 0)
	assert.ErrorIs(t, err, service.ErrInvalidPagination)
}

// Rescheduling a SCHEDULED show by date alone flips it to RESCHEDULED;
// explicit status updates still obey the transition table.
func TestShowReschedule(t *testing.T) {
	cleanTables()
	event := createTestEvent(t, "Reschedule Gig", nil)
	show := createTestShow(t, event.ID, time.Date(2026, 11, 5, 19, 0, 0, 0, time.UTC))
	svc := newShowService()

	newDate := time.Date(2026, 11, 12, 19, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateShow(t.Context(), show.ID, service.UpdateShowInput{DateTime: &newDate})
	require.NoError(t, err)
	assert.Equal(t, models.ShowRescheduled, updated.Status)

	// Back to SCHEDULED is a legal explicit transition.
	scheduled := models.ShowScheduled
	updated, err = svc.UpdateShow(t.Context(), show.ID, service.UpdateShowInput{Status: &scheduled})
	require.NoError(t, err)
	assert.Equal(t, models.ShowScheduled, updated.Status)

	// CANCELLED is terminal: once the cascade ran, no explicit update
	// brings the show back.
	_, err = newCascadeService().CancelShow(t.Context(), show.ID)
	require.NoError(t, err)

	_, err = svc.UpdateShow(t.Context(), show.ID, service.UpdateShowInput{Status: &scheduled})
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}

// A holder with booking history is held by the RESTRICT FK even once every
// booking is cancelled; only deleting the bookings frees the holder.
func TestDeleteTicketHolderWithHistory(t *testing.T) {
	cleanTables()
	event := createTestEvent(t, "History Gig", nil)
	show := createTestShow(t, event.ID, time.Date(2026, 11, 7, 19, 0, 0, 0, time.UTC))
	holder := createTestHolder(t, 4)
	bookings := newBookingService()
	holders := newTicketHolderService()

	booking := bookFor(t, bookings, show.ID, holder.ID)

	err := holders.DeleteTicketHolder(t.Context(), holder.ID)
	assert.ErrorIs(t, err, service.ErrHolderHasBookings)

	_, err = bookings.CancelBooking(t.Context(), booking.ID)
	require.NoError(t, err)

	err = holders.DeleteTicketHolder(t.Context(), holder.ID)
	assert.ErrorIs(t, err, service.ErrHolderHasHistory)

	require.NoError(t, bookings.DeleteBooking(t.Context(), booking.ID))
	require.NoError(t, holders.DeleteTicketHolder(t.Context(), holder.ID))
}

// New shows cannot be added to a cancelled event.
func TestCreateShowOnCancelledEvent(t *testing.T) {
	cleanTables()
	event := createTestEvent(t, "Cancelled Event", nil)

	_, err := newCascadeService().CancelEvent(t.Context(), event.ID)
	require.NoError(t, err)

	_, err = newShowService().CreateShow(t.Context(), event.ID, time.Date(2026, 11, 8, 19, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, service.ErrEventCancelled)
}

// Two shows for the same event at the same instant collide on the
// occurrence index.
func TestDuplicateShowOccurrence(t *testing.T) {
	cleanTables()
	event := createTestEvent(t, "Duplicate Occurrence", nil)
	svc := newShowService()

	at := time.Date(2026, 11, 6, 19, 0, 0, 0, time.UTC)
	_, err := svc.CreateShow(t.Context(), event.ID, at)
	require.NoError(t, err)

	_, err = svc.CreateShow(t.Context(), event.ID, at)
	assert.ErrorIs(t, err, service.ErrDuplicateShow)
}
