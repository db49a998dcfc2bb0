package models

import "time"

type Show struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	EventID   uint       `gorm:"not null;uniqueIndex:idx_show_occurrence" json:"event_id"`
	DateTime  time.Time  `gorm:"not null;uniqueIndex:idx_show_occurrence" json:"date_time"`
	Status    ShowStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED'" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}
