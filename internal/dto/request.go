package dto

import (
	"time"

	"github.com/gigmate/gigmate/internal/models"
)

type CreateVenueRequest struct {
	Name     string `json:"name" validate:"required,max=30"`
	Location string `json:"location" validate:"required,max=100"`
	Capacity int    `json:"capacity" validate:"required,gte=1,lte=200000"`
}

type UpdateVenueRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=30"`
	Location *string `json:"location" validate:"omitempty,max=100"`
	Capacity *int    `json:"capacity" validate:"omitempty,gte=1,lte=200000"`
}

type CreateOrganiserRequest struct {
	FullName    string `json:"full_name" validate:"required,max=50"`
	Email       string `json:"email" validate:"required,email,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,e164,max=15"`
}

type UpdateOrganiserRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,max=50"`
	Email       *string `json:"email" validate:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,e164,max=15"`
}

type CreateEventRequest struct {
	Title         string  `json:"title" validate:"required,max=100"`
	Description   string  `json:"description" validate:"required"`
	DurationHours float64 `json:"duration_hours" validate:"required,gte=1,lte=12"`
	OrganiserID   *uint   `json:"organiser_id"`
	VenueID       *uint   `json:"venue_id"`
}

type UpdateEventRequest struct {
	Title         *string  `json:"title" validate:"omitempty,max=100"`
	Description   *string  `json:"description"`
	DurationHours *float64 `json:"duration_hours" validate:"omitempty,gte=1,lte=12"`
	OrganiserID   *uint    `json:"organiser_id"`
	VenueID       *uint    `json:"venue_id"`
}

type CreateShowRequest struct {
	EventID  uint      `json:"event_id" validate:"required"`
	DateTime time.Time `json:"date_time" validate:"required"`
}

type UpdateShowRequest struct {
	DateTime *time.Time         `json:"date_time"`
	Status   *models.ShowStatus `json:"status" validate:"omitempty,oneof=SCHEDULED RESCHEDULED CANCELLED"`
}

type CreateTicketHolderRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=20"`
	LastName    string `json:"last_name" validate:"required,max=30"`
	Email       string `json:"email" validate:"required,email,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,e164,max=15"`
}

type UpdateTicketHolderRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=20"`
	LastName    *string `json:"last_name" validate:"omitempty,max=30"`
	Email       *string `json:"email" validate:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,e164,max=15"`
}

type CreateBookingRequest struct {
	ShowID         uint    `json:"show_id" validate:"required"`
	TicketHolderID uint    `json:"ticket_holder_id" validate:"required"`
	Section        string  `json:"section" validate:"required,max=50"`
	SeatNumber     *string `json:"seat_number" validate:"omitempty,min=1,max=4"`
}
