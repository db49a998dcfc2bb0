package models

import "time"

// Organiser is deliberately a separate table from TicketHolder: the two
// identities live in different access domains and must evolve independently.
type Organiser struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `gorm:"size:50;not null" json:"full_name"`
	Email       string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PhoneNumber string    `gorm:"size:15;not null;uniqueIndex" json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Events []Event `gorm:"foreignKey:OrganiserID;constraint:OnDelete:SET NULL" json:"events,omitempty"`
}
