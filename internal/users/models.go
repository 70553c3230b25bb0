package users

import (
	"time"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// IsValid checks if the gender value is one the reporting queries recognise
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

// String returns the string representation of Gender
func (g Gender) String() string {
	return string(g)
}

// User mirrors the externally owned users table
type User struct {
	ID              int64     `json:"id" gorm:"column:id;primaryKey"`
	Name            string    `json:"name" gorm:"column:name;not null;size:255"`
	Gender          Gender    `json:"gender" gorm:"column:gender;type:varchar(20)"`
	ProfileImageURL *string   `json:"profile_image_url" gorm:"column:profileImageUrl;size:500"`
	CreatedAt       time.Time `json:"created_at" gorm:"column:createdAt;autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"column:updatedAt;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
