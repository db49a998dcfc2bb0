package models

import "time"

type Venue struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:30;not null;uniqueIndex" json:"name"`
	Location  string    `gorm:"size:100;not null" json:"location"`
	Capacity  int       `gorm:"not null;check:capacity >= 1 AND capacity <= 200000" json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Deleting a venue leaves its events in place with venue_id cleared
	// ("Venue To Be Announced" on the read side).
	Events []Event `gorm:"foreignKey:VenueID;constraint:OnDelete:SET NULL" json:"events,omitempty"`
}
