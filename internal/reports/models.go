package reports

import (
	"time"
)

// VenueReport is the full analytics payload the endpoint serves for a single
// venue. Every list field is always a non-nil slice, even when empty.
type VenueReport struct {
	GeneratedAt   time.Time     `json:"generated_at"`
	VenueID       int64         `json:"venue_id"`
	VenueInfo     VenueInfo     `json:"venue_info"`
	HeaderStats   HeaderStats   `json:"header_stats"`
	AnalyticsPage AnalyticsPage `json:"analytics_page"`
	Charts        Charts        `json:"charts"`
	TopClients    []TopClient   `json:"top_clients"`
}

type VenueInfo struct {
	Name            string  `json:"name"`
	ProfileImageURL *string `json:"profile_image_url"`
}

type HeaderStats struct {
	TotalFollowers    int64 `json:"total_followers"`
	TotalBookings     int64 `json:"total_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
}

type AnalyticsPage struct {
	Period ReportPeriod `json:"period"`
	Stats  PeriodStats  `json:"stats"`
}

// ReportPeriod bounds the trailing analytics window, date-only (YYYY-MM-DD)
type ReportPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PeriodStats are the counts restricted to the trailing analytics window.
// Accepted/declined requests come from venue_bookings, unlike the header
// totals which come from user_venue_bookings.
type PeriodStats struct {
	NewFollowers            int64 `json:"new_followers"`
	Unfollows               int64 `json:"unfollows"`
	AcceptedBookingRequests int64 `json:"accepted_booking_requests"`
	DeclinedBookingRequests int64 `json:"declined_booking_requests"`
}

type Charts struct {
	BookingsByGenderOverTime []GenderMonthlyBookings `json:"bookings_by_gender_over_time"`
	PopularEventTypes        []EventTypeStats        `json:"popular_event_types"`
}

// GenderMonthlyBookings is one calendar-month bucket (YYYY-MM) of the gender
// chart. Months with no bookings at all produce no bucket.
type GenderMonthlyBookings struct {
	Month          string `json:"month"`
	MaleBookings   int64  `json:"male_bookings"`
	FemaleBookings int64  `json:"female_bookings"`
}

// EventTypeStats is one category's share of the venue's events. Percentage is
// nil when the venue has no events at all.
type EventTypeStats struct {
	CategoryName string   `json:"category_name"`
	EventCount   int64    `json:"event_count"`
	Percentage   *float64 `json:"percentage"`
}

type TopClient struct {
	ClientName      string  `json:"client_name"`
	ProfileImageURL *string `json:"profile_image_url"`
	BookingCount    int64   `json:"booking_count"`
}

// VenueHeader is the raw projection of the header-stats query: venue identity
// fields plus the all-time counters.
type VenueHeader struct {
	VenueName         *string `json:"venue_name"`
	VenueImageURL     *string `json:"venue_image_url"`
	TotalFollowers    int64   `json:"total_followers"`
	TotalBookings     int64   `json:"total_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
}
