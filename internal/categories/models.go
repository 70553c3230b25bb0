package categories

import (
	"time"
)

// Category mirrors the externally owned categories table
type Category struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	Name      string    `json:"name" gorm:"column:name;not null;size:255"`
	CreatedAt time.Time `json:"created_at" gorm:"column:createdAt;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updatedAt;autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryMapping mirrors the category_mappings join table between events and
// categories
type CategoryMapping struct {
	ID         int64     `json:"id" gorm:"column:id;primaryKey"`
	EventID    int64     `json:"event_id" gorm:"column:eventId;index;not null"`
	CategoryID int64     `json:"category_id" gorm:"column:categoryId;index;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:createdAt;autoCreateTime"`
}

func (CategoryMapping) TableName() string {
	return "category_mappings"
}
