package main

import (
	"fmt"
	"log"
	"time"

	"venuelytics/internal/bookings"
	"venuelytics/internal/categories"
	"venuelytics/internal/events"
	"venuelytics/internal/follows"
	"venuelytics/internal/shared/config"
	"venuelytics/internal/shared/database"
	"venuelytics/internal/users"
	"venuelytics/internal/venues"
)

// Seeder provisions a local development database with the canonical venue
// analytics fixture. It is never run against the production store.
type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Venuelytics Database Seeder...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🔨 Creating schema...")
	if err := seeder.MigrateSchema(); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	fmt.Println("✅ Schema ready")

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// MigrateSchema creates the reporting tables locally. The production schema is
// owned upstream; this exists only so the fixture has somewhere to live.
func (s *Seeder) MigrateSchema() error {
	return s.db.PostgreSQL.AutoMigrate(
		&users.User{},
		&venues.Venue{},
		&follows.Follow{},
		&bookings.UserVenueBooking{},
		&bookings.VenueBooking{},
		&events.Event{},
		&categories.Category{},
		&categories.CategoryMapping{},
	)
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"category_mappings",
		"categories",
		"events",
		"venue_bookings",
		"user_venue_bookings",
		"follows",
		"venues",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds the canonical "RocoMamas Kenya" fixture: an owner, a handful
// of clients, follower churn, completed and pending bookings, a month of
// booking requests, and categorised events.
func (s *Seeder) SeedAll() error {
	now := time.Now().UTC()

	if err := s.seedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := s.seedVenues(); err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}
	if err := s.seedFollows(now); err != nil {
		return fmt.Errorf("failed to seed follows: %w", err)
	}
	if err := s.seedBookings(now); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}
	if err := s.seedEvents(); err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	return nil
}

func (s *Seeder) seedUsers() error {
	fmt.Println("  Seeding users...")

	seedUsers := []users.User{
		{ID: 10, Name: "RocoMamas Owner", Gender: users.GenderMale},
		{ID: 11, Name: "Carnivore Owner", Gender: users.GenderFemale},
		{ID: 21, Name: "Achieng Odhiambo", Gender: users.GenderFemale, ProfileImageURL: imageURL("achieng")},
		{ID: 22, Name: "Brian Kamau", Gender: users.GenderMale, ProfileImageURL: imageURL("brian")},
		{ID: 23, Name: "Cynthia Wanjiru", Gender: users.GenderFemale, ProfileImageURL: imageURL("cynthia")},
		{ID: 24, Name: "David Otieno", Gender: users.GenderMale, ProfileImageURL: imageURL("david")},
	}

	return s.db.PostgreSQL.Create(&seedUsers).Error
}

func (s *Seeder) seedVenues() error {
	fmt.Println("  Seeding venues...")

	seedVenues := []venues.Venue{
		{ID: 1, VenueName: "RocoMamas Kenya", ProfileImageURL: imageURL("rocomamas"), UserID: 10},
		{ID: 2, VenueName: "The Carnivore", ProfileImageURL: imageURL("carnivore"), UserID: 11},
	}

	return s.db.PostgreSQL.Create(&seedVenues).Error
}

func (s *Seeder) seedFollows(now time.Time) error {
	fmt.Println("  Seeding follows...")

	unfollowedAt := now.AddDate(0, 0, -10)
	seedFollows := []follows.Follow{
		// Three live followers of the RocoMamas owner.
		{ID: 1, FollowerID: 21, EntityID: 10, EntityType: follows.EntityTypeVenue, CreatedAt: now.AddDate(0, 0, -90)},
		{ID: 2, FollowerID: 22, EntityID: 10, EntityType: follows.EntityTypeVenue, CreatedAt: now.AddDate(0, 0, -20)},
		{ID: 3, FollowerID: 23, EntityID: 10, EntityType: follows.EntityTypeVenue, CreatedAt: now.AddDate(0, 0, -5)},
		// One unfollow inside the trailing 30-day window.
		{ID: 4, FollowerID: 24, EntityID: 10, EntityType: follows.EntityTypeVenue, CreatedAt: now.AddDate(0, 0, -60), DeletedAt: &unfollowedAt},
	}

	return s.db.PostgreSQL.Create(&seedFollows).Error
}

func (s *Seeder) seedBookings(now time.Time) error {
	fmt.Println("  Seeding bookings...")

	seedUserVenueBookings := []bookings.UserVenueBooking{
		{ID: 1, VenueID: 1, UserID: 21, Status: bookings.StatusCompleted, CreatedAt: now.AddDate(0, 0, -70)},
		{ID: 2, VenueID: 1, UserID: 22, Status: bookings.StatusCompleted, CreatedAt: now.AddDate(0, 0, -35)},
		{ID: 3, VenueID: 1, UserID: 23, Status: bookings.StatusPending, CreatedAt: now.AddDate(0, 0, -3)},
		{ID: 4, VenueID: 1, UserID: 21, Status: bookings.StatusCompleted, CreatedAt: now.AddDate(0, 0, -8)},
	}
	if err := s.db.PostgreSQL.Create(&seedUserVenueBookings).Error; err != nil {
		return err
	}

	seedVenueBookings := []bookings.VenueBooking{
		{ID: 1, VenueID: 1, UserID: 22, Status: bookings.StatusApproved, CreatedAt: now.AddDate(0, 0, -12)},
		{ID: 2, VenueID: 1, UserID: 23, Status: bookings.StatusApproved, CreatedAt: now.AddDate(0, 0, -6)},
		{ID: 3, VenueID: 1, UserID: 24, Status: bookings.StatusRejected, CreatedAt: now.AddDate(0, 0, -2)},
		{ID: 4, VenueID: 1, UserID: 21, Status: bookings.StatusPending, CreatedAt: now.AddDate(0, 0, -1)},
	}
	return s.db.PostgreSQL.Create(&seedVenueBookings).Error
}

func (s *Seeder) seedEvents() error {
	fmt.Println("  Seeding events and categories...")

	seedCategories := []categories.Category{
		{ID: 1, Name: "Live Music"},
		{ID: 2, Name: "Comedy Night"},
		{ID: 3, Name: "Karaoke"},
	}
	if err := s.db.PostgreSQL.Create(&seedCategories).Error; err != nil {
		return err
	}

	seedEvents := []events.Event{
		{ID: 1, VenueID: 1, Name: "Friday Live Band"},
		{ID: 2, VenueID: 1, Name: "Saturday Live Band"},
		{ID: 3, VenueID: 1, Name: "Open Mic Comedy"},
		// Uncategorised event; still counts toward the percentage denominator.
		{ID: 4, VenueID: 1, Name: "Private Function"},
	}
	if err := s.db.PostgreSQL.Create(&seedEvents).Error; err != nil {
		return err
	}

	seedMappings := []categories.CategoryMapping{
		{ID: 1, EventID: 1, CategoryID: 1},
		{ID: 2, EventID: 2, CategoryID: 1},
		{ID: 3, EventID: 3, CategoryID: 2},
	}
	return s.db.PostgreSQL.Create(&seedMappings).Error
}

func imageURL(slug string) *string {
	url := fmt.Sprintf("https://cdn.venuelytics.dev/profiles/%s.jpg", slug)
	return &url
}
