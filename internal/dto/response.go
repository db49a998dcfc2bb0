package dto

import (
	"time"

	"github.com/gigmate/gigmate/internal/models"
)

type BookingResponse struct {
	ID             uint                 `json:"id"`
	Reference      string               `json:"reference"`
	ShowID         uint                 `json:"show_id"`
	TicketHolderID uint                 `json:"ticket_holder_id"`
	Section        string               `json:"section"`
	SeatNumber     *string              `json:"seat_number,omitempty"`
	Status         models.BookingStatus `json:"status"`
	BookingDate    time.Time            `json:"booking_date"`
	CreatedAt      time.Time            `json:"created_at"`
}

// BookingListResponse mirrors the paginated listing: deterministic item
// order plus enough metadata to walk the pages.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Page     int               `json:"page"`
	PerPage  int               `json:"per_page"`
	Total    int64             `json:"total"`
	Pages    int64             `json:"pages"`
}

type CancelResponse struct {
	Message           string `json:"message"`
	ShowsCancelled    int64  `json:"shows_cancelled"`
	BookingsCancelled int64  `json:"bookings_cancelled"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		Reference:      b.Reference,
		ShowID:         b.ShowID,
		TicketHolderID: b.TicketHolderID,
		Section:        b.Section,
		SeatNumber:     b.SeatNumber,
		Status:         b.Status,
		BookingDate:    b.BookingDate,
		CreatedAt:      b.CreatedAt,
	}
}

func ToBookingListResponse(items []models.Booking, total int64, page, perPage int) BookingListResponse {
	resp := make([]BookingResponse, len(items))
	for i, b := range items {
		resp[i] = ToBookingResponse(&b)
	}
	pages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		pages++
	}
	return BookingListResponse{
		Bookings: resp,
		Page:     page,
		PerPage:  perPage,
		Total:    total,
		Pages:    pages,
	}
}
