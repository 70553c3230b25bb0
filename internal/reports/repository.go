package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrVenueNotFound is returned when a venue name or id matches no row.
var ErrVenueNotFound = errors.New("venue not found")

// Repository defines the read-only aggregate queries behind a venue report
type Repository interface {
	VenueIDByName(ctx context.Context, name string) (int64, error)
	VenueOwner(ctx context.Context, venueID int64) (int64, error)
	HeaderStats(ctx context.Context, venueID, ownerID int64) (*VenueHeader, error)
	PeriodStats(ctx context.Context, venueID, ownerID int64, start, end time.Time) (*PeriodStats, error)
	BookingsByGender(ctx context.Context, venueID int64, since time.Time) ([]GenderMonthlyBookings, error)
	EventTypeCounts(ctx context.Context, venueID int64, limit int) ([]EventTypeStats, error)
	TotalEvents(ctx context.Context, venueID int64) (int64, error)
	TopClients(ctx context.Context, venueID int64, limit int) ([]TopClient, error)
}

// repository implements the Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new report repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// VenueIDByName resolves a venue name to its id. The match is exact and
// case-sensitive; when several rows share a name the first returned wins.
func (r *repository) VenueIDByName(ctx context.Context, name string) (int64, error) {
	var venue struct {
		ID int64 `json:"id"`
	}

	err := r.db.WithContext(ctx).
		Table("venues").
		Select("id").
		Where(`"venueName" = ?`, name).
		Take(&venue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrVenueNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up venue %q: %w", name, err)
	}

	return venue.ID, nil
}

// VenueOwner returns the id of the user that owns the venue; follower counts
// key off the owner, not the venue row itself.
func (r *repository) VenueOwner(ctx context.Context, venueID int64) (int64, error) {
	var venue struct {
		OwnerID int64 `json:"owner_id"`
	}

	err := r.db.WithContext(ctx).
		Table("venues").
		Select(`"userId" AS owner_id`).
		Where("id = ?", venueID).
		Take(&venue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrVenueNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve owner of venue %d: %w", venueID, err)
	}

	return venue.OwnerID, nil
}

func (r *repository) HeaderStats(ctx context.Context, venueID, ownerID int64) (*VenueHeader, error) {
	var header VenueHeader

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT "venueName" FROM venues WHERE id = ?) AS venue_name,
			(SELECT "profileImageUrl" FROM venues WHERE id = ?) AS venue_image_url,
			(SELECT COUNT(*) FROM follows WHERE "entityId" = ? AND "entityType" = 'VENUE' AND "deletedAt" IS NULL) AS total_followers,
			(SELECT COUNT(*) FROM user_venue_bookings WHERE "venueId" = ?) AS total_bookings,
			(SELECT COUNT(*) FROM user_venue_bookings WHERE "venueId" = ? AND UPPER(status::text) = 'COMPLETED') AS completed_bookings
	`, venueID, venueID, ownerID, venueID, venueID).Scan(&header).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get header stats: %w", err)
	}

	return &header, nil
}

// PeriodStats counts follower movement and booking requests inside the window.
// The request counts read venue_bookings, not user_venue_bookings, and the
// follow counts carry no entityType filter; both match the upstream schema's
// behavior and must stay that way.
func (r *repository) PeriodStats(ctx context.Context, venueID, ownerID int64, start, end time.Time) (*PeriodStats, error) {
	var stats PeriodStats

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM follows WHERE "entityId" = ? AND "createdAt" BETWEEN ? AND ?) AS new_followers,
			(SELECT COUNT(*) FROM follows WHERE "entityId" = ? AND "deletedAt" BETWEEN ? AND ?) AS unfollows,
			COUNT(id) FILTER (WHERE UPPER(status::text) = 'APPROVED') AS accepted_booking_requests,
			COUNT(id) FILTER (WHERE UPPER(status::text) = 'REJECTED') AS declined_booking_requests
		FROM venue_bookings
		WHERE "venueId" = ? AND "createdAt" BETWEEN ? AND ?
	`, ownerID, start, end, ownerID, start, end, venueID, start, end).Scan(&stats).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get time-filtered stats: %w", err)
	}

	return &stats, nil
}

func (r *repository) BookingsByGender(ctx context.Context, venueID int64, since time.Time) ([]GenderMonthlyBookings, error) {
	var buckets []GenderMonthlyBookings

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(DATE_TRUNC('month', uvb."createdAt"), 'YYYY-MM') AS month,
			COUNT(uvb.id) FILTER (WHERE UPPER(u.gender::text) = 'MALE') AS male_bookings,
			COUNT(uvb.id) FILTER (WHERE UPPER(u.gender::text) = 'FEMALE') AS female_bookings
		FROM user_venue_bookings uvb
		JOIN users u ON uvb."userId" = u.id
		WHERE uvb."venueId" = ? AND uvb."createdAt" >= ?
		GROUP BY month
		ORDER BY month
	`, venueID, since).Scan(&buckets).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get bookings by gender: %w", err)
	}

	return buckets, nil
}

// EventTypeCounts returns per-category event counts, most popular first.
// Percentages are derived in the service against TotalEvents.
func (r *repository) EventTypeCounts(ctx context.Context, venueID int64, limit int) ([]EventTypeStats, error) {
	var stats []EventTypeStats

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.name AS category_name,
			COUNT(e.id) AS event_count
		FROM events e
		JOIN category_mappings cm ON e.id = cm."eventId"
		JOIN categories c ON cm."categoryId" = c.id
		WHERE e."venueId" = ?
		GROUP BY c.name
		ORDER BY event_count DESC
		LIMIT ?
	`, venueID, limit).Scan(&stats).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get popular event types: %w", err)
	}

	return stats, nil
}

// TotalEvents counts every event at the venue, including events with no
// category mapping; it is the percentage denominator.
func (r *repository) TotalEvents(ctx context.Context, venueID int64) (int64, error) {
	var total int64

	err := r.db.WithContext(ctx).
		Table("events").
		Where(`"venueId" = ?`, venueID).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}

	return total, nil
}

func (r *repository) TopClients(ctx context.Context, venueID int64, limit int) ([]TopClient, error) {
	var clients []TopClient

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			u.name AS client_name,
			u."profileImageUrl" AS profile_image_url,
			COUNT(uvb.id) AS booking_count
		FROM user_venue_bookings uvb
		JOIN users u ON uvb."userId" = u.id
		WHERE uvb."venueId" = ?
		GROUP BY u.id, u.name, u."profileImageUrl"
		ORDER BY booking_count DESC
		LIMIT ?
	`, venueID, limit).Scan(&clients).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get top clients: %w", err)
	}

	return clients, nil
}
