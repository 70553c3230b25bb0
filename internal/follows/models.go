package follows

import (
	"time"
)

type EntityType string

const (
	EntityTypeVenue EntityType = "VENUE"
	EntityTypeUser  EntityType = "USER"
)

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeVenue, EntityTypeUser:
		return true
	}
	return false
}

func (e EntityType) String() string {
	return string(e)
}

// Follow mirrors the externally owned follows table. A row with a non-nil
// DeletedAt is an unfollow; the row is never physically removed.
type Follow struct {
	ID         int64      `json:"id" gorm:"column:id;primaryKey"`
	FollowerID int64      `json:"follower_id" gorm:"column:followerId;index;not null"`
	EntityID   int64      `json:"entity_id" gorm:"column:entityId;index;not null"`
	EntityType EntityType `json:"entity_type" gorm:"column:entityType;type:varchar(20);not null"`
	CreatedAt  time.Time  `json:"created_at" gorm:"column:createdAt;autoCreateTime"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" gorm:"column:deletedAt"`
}

func (Follow) TableName() string {
	return "follows"
}
