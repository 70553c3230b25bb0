package events

import (
	"time"
)

// Event mirrors the externally owned events table
type Event struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	VenueID   int64     `json:"venue_id" gorm:"column:venueId;index;not null"`
	Name      string    `json:"name" gorm:"column:name;size:255"`
	CreatedAt time.Time `json:"created_at" gorm:"column:createdAt;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updatedAt;autoUpdateTime"`
}

func (Event) TableName() string {
	return "events"
}
