package models

import "time"

type Event struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"size:100;not null;uniqueIndex:idx_event_content" json:"title"`
	Description   string     `gorm:"type:text;not null;uniqueIndex:idx_event_content" json:"description"`
	DurationHours float64    `gorm:"not null;check:duration_hours >= 1 AND duration_hours <= 12" json:"duration_hours"`
	OrganiserID   *uint      `json:"organiser_id"`
	VenueID       *uint      `json:"venue_id"` // nil until a venue is confirmed
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Organiser *Organiser `gorm:"foreignKey:OrganiserID" json:"organiser,omitempty"`
	Venue     *Venue     `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	Shows     []Show     `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"shows,omitempty"`
}

func (e *Event) Cancelled() bool {
	return e.CancelledAt != nil
}
