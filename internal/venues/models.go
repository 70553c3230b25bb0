package venues

import (
	"time"
)

// Venue mirrors the externally owned venues table. Column names follow the
// upstream schema's quoted camelCase identifiers.
type Venue struct {
	ID              int64      `json:"id" gorm:"column:id;primaryKey"`
	VenueName       string     `json:"venue_name" gorm:"column:venueName;not null;size:255"`
	ProfileImageURL *string    `json:"profile_image_url" gorm:"column:profileImageUrl;size:500"`
	UserID          int64      `json:"user_id" gorm:"column:userId;index;not null"`
	CreatedAt       time.Time  `json:"created_at" gorm:"column:createdAt;autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"column:updatedAt;autoUpdateTime"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty" gorm:"column:deletedAt"`
}

func (Venue) TableName() string {
	return "venues"
}
