package models

import "time"

type TicketHolder struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"size:20;not null" json:"first_name"`
	LastName    string    `gorm:"size:30;not null" json:"last_name"`
	Email       string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PhoneNumber string    `gorm:"size:15;not null;uniqueIndex" json:"phone_number"` // E.164, up to 15 chars
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:TicketHolderID;constraint:OnDelete:RESTRICT" json:"bookings,omitempty"`
}
