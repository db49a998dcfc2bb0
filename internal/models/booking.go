package models

import "time"

// Booking rows are never deleted once cancelled: cancellation is a status
// change so the history stays queryable. Hard deletion is a separate,
// explicit operation and is refused while the booking is still active.
type Booking struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Reference      string        `gorm:"size:36;not null;uniqueIndex" json:"reference"`
	ShowID         uint          `gorm:"not null" json:"show_id"`
	TicketHolderID uint          `gorm:"not null" json:"ticket_holder_id"`
	Section        string        `gorm:"size:50;not null" json:"section"`
	SeatNumber     *string       `gorm:"size:4" json:"seat_number,omitempty"` // nil for general admission
	Status         BookingStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	BookingDate    time.Time     `gorm:"not null" json:"booking_date"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	Show         *Show         `gorm:"foreignKey:ShowID" json:"show,omitempty"`
	TicketHolder *TicketHolder `gorm:"foreignKey:TicketHolderID" json:"ticket_holder,omitempty"`
}

func (b *Booking) Active() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}
