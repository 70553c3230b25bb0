package bookings

import (
	"time"
)

// UserVenueBooking mirrors the user_venue_bookings table: a confirmed booking a
// user made at a venue. Header totals and the gender/top-client charts read
// from this table.
type UserVenueBooking struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	VenueID   int64     `json:"venue_id" gorm:"column:venueId;index;not null"`
	UserID    int64     `json:"user_id" gorm:"column:userId;index;not null"`
	Status    Status    `json:"status" gorm:"column:status;type:varchar(20);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:createdAt;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updatedAt;autoUpdateTime"`
}

func (UserVenueBooking) TableName() string {
	return "user_venue_bookings"
}

// VenueBooking mirrors the venue_bookings table: a booking request addressed to
// the venue. The upstream schema keeps requests and confirmed bookings in
// separate tables; the accepted/declined window counts read from this one.
type VenueBooking struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	VenueID   int64     `json:"venue_id" gorm:"column:venueId;index;not null"`
	UserID    int64     `json:"user_id" gorm:"column:userId;index;not null"`
	Status    Status    `json:"status" gorm:"column:status;type:varchar(20);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:createdAt;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updatedAt;autoUpdateTime"`
}

func (VenueBooking) TableName() string {
	return "venue_bookings"
}
