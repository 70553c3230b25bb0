package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuelytics/internal/shared/config"
)

// stubRepository returns canned data and records the arguments it was
// called with.
type stubRepository struct {
	venueID     int64
	ownerID     int64
	header      *VenueHeader
	stats       *PeriodStats
	byGender    []GenderMonthlyBookings
	eventTypes  []EventTypeStats
	totalEvents int64
	topClients  []TopClient

	lookupErr error
	queryErr  error

	gotName       string
	gotLimit      int
	gotStart      time.Time
	gotEnd        time.Time
	gotTrendSince time.Time
}

func (s *stubRepository) VenueIDByName(ctx context.Context, name string) (int64, error) {
	s.gotName = name
	if s.lookupErr != nil {
		return 0, s.lookupErr
	}
	return s.venueID, nil
}

func (s *stubRepository) VenueOwner(ctx context.Context, venueID int64) (int64, error) {
	if s.queryErr != nil {
		return 0, s.queryErr
	}
	return s.ownerID, nil
}

func (s *stubRepository) HeaderStats(ctx context.Context, venueID, ownerID int64) (*VenueHeader, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return s.header, nil
}

func (s *stubRepository) PeriodStats(ctx context.Context, venueID, ownerID int64, start, end time.Time) (*PeriodStats, error) {
	s.gotStart, s.gotEnd = start, end
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return s.stats, nil
}

func (s *stubRepository) BookingsByGender(ctx context.Context, venueID int64, since time.Time) ([]GenderMonthlyBookings, error) {
	s.gotTrendSince = since
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return s.byGender, nil
}

func (s *stubRepository) EventTypeCounts(ctx context.Context, venueID int64, limit int) ([]EventTypeStats, error) {
	s.gotLimit = limit
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return s.eventTypes, nil
}

func (s *stubRepository) TotalEvents(ctx context.Context, venueID int64) (int64, error) {
	if s.queryErr != nil {
		return 0, s.queryErr
	}
	return s.totalEvents, nil
}

func (s *stubRepository) TopClients(ctx context.Context, venueID int64, limit int) ([]TopClient, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return s.topClients, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Report: config.ReportConfig{
			PeriodDays:  30,
			TrendMonths: 6,
			TopLimit:    5,
		},
	}
}

func strPtr(s string) *string { return &s }

func TestGetVenueReportAssemblesAllSections(t *testing.T) {
	repo := &stubRepository{
		venueID: 1,
		ownerID: 10,
		header: &VenueHeader{
			VenueName:         strPtr("RocoMamas Kenya"),
			VenueImageURL:     strPtr("https://cdn.example.com/roco.jpg"),
			TotalFollowers:    3,
			TotalBookings:     3,
			CompletedBookings: 2,
		},
		stats: &PeriodStats{
			NewFollowers:            1,
			Unfollows:               1,
			AcceptedBookingRequests: 2,
			DeclinedBookingRequests: 1,
		},
		byGender: []GenderMonthlyBookings{
			{Month: "2026-06", MaleBookings: 1, FemaleBookings: 0},
			{Month: "2026-07", MaleBookings: 2, FemaleBookings: 3},
		},
		eventTypes: []EventTypeStats{
			{CategoryName: "Live Music", EventCount: 2},
			{CategoryName: "Comedy Night", EventCount: 1},
		},
		totalEvents: 4,
		topClients: []TopClient{
			{ClientName: "Achieng Odhiambo", BookingCount: 2},
			{ClientName: "Brian Kamau", BookingCount: 1},
		},
	}

	svc := NewService(repo, testConfig())
	report, err := svc.GetVenueReport(context.Background(), "RocoMamas Kenya")
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, "RocoMamas Kenya", repo.gotName)
	assert.Equal(t, int64(1), report.VenueID)
	assert.Equal(t, "RocoMamas Kenya", report.VenueInfo.Name)
	assert.Equal(t, int64(3), report.HeaderStats.TotalFollowers)
	assert.Equal(t, int64(2), report.HeaderStats.CompletedBookings)
	assert.Equal(t, int64(2), report.AnalyticsPage.Stats.AcceptedBookingRequests)

	// Window bounds: generated_at is the window end, the period is date-only.
	assert.WithinDuration(t, time.Now().UTC(), report.GeneratedAt, 5*time.Second)
	assert.Equal(t, report.GeneratedAt.Format("2006-01-02"), report.AnalyticsPage.Period.End)
	assert.Equal(t, report.GeneratedAt.AddDate(0, 0, -30).Format("2006-01-02"), report.AnalyticsPage.Period.Start)
	assert.WithinDuration(t, report.GeneratedAt.AddDate(0, 0, -30), repo.gotStart, time.Second)
	assert.WithinDuration(t, report.GeneratedAt.AddDate(0, 0, -180), repo.gotTrendSince, time.Second)
	assert.Equal(t, 5, repo.gotLimit)

	// Percentages are derived against the full event count, including the
	// uncategorised event.
	types := report.Charts.PopularEventTypes
	require.Len(t, types, 2)
	require.NotNil(t, types[0].Percentage)
	assert.InDelta(t, 50.0, *types[0].Percentage, 0.001)
	require.NotNil(t, types[1].Percentage)
	assert.InDelta(t, 25.0, *types[1].Percentage, 0.001)

	require.Len(t, report.Charts.BookingsByGenderOverTime, 2)
	assert.Equal(t, "2026-06", report.Charts.BookingsByGenderOverTime[0].Month)
	require.Len(t, report.TopClients, 2)
	assert.Equal(t, int64(2), report.TopClients[0].BookingCount)
}

func TestGetVenueReportUnknownVenue(t *testing.T) {
	repo := &stubRepository{lookupErr: ErrVenueNotFound}

	svc := NewService(repo, testConfig())
	report, err := svc.GetVenueReport(context.Background(), "Imaginary Venue Hall")

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestGetVenueReportQueryFailureAbortsReport(t *testing.T) {
	repo := &stubRepository{
		venueID:  1,
		ownerID:  10,
		queryErr: errors.New("connection reset by peer"),
	}

	svc := NewService(repo, testConfig())
	report, err := svc.GetVenueReport(context.Background(), "RocoMamas Kenya")

	assert.Nil(t, report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset by peer")
}

func TestGetVenueReportEmptyVenue(t *testing.T) {
	repo := &stubRepository{
		venueID: 7,
		ownerID: 70,
		header:  &VenueHeader{VenueName: strPtr("Quiet Corner")},
		stats:   &PeriodStats{},
	}

	svc := NewService(repo, testConfig())
	report, err := svc.GetVenueReport(context.Background(), "Quiet Corner")
	require.NoError(t, err)

	assert.Zero(t, report.HeaderStats.TotalFollowers)
	assert.Zero(t, report.HeaderStats.TotalBookings)
	assert.Zero(t, report.AnalyticsPage.Stats.NewFollowers)

	// Empty sections marshal as [], never null.
	assert.NotNil(t, report.Charts.BookingsByGenderOverTime)
	assert.Empty(t, report.Charts.BookingsByGenderOverTime)
	assert.NotNil(t, report.Charts.PopularEventTypes)
	assert.Empty(t, report.Charts.PopularEventTypes)
	assert.NotNil(t, report.TopClients)
	assert.Empty(t, report.TopClients)
}

func TestPercentageOf(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		total int64
		want  float64
		isNil bool
	}{
		{name: "one third", count: 1, total: 3, want: 33.33},
		{name: "two thirds", count: 2, total: 3, want: 66.67},
		{name: "all events", count: 5, total: 5, want: 100},
		{name: "no matches", count: 0, total: 4, want: 0},
		{name: "zero total", count: 0, total: 0, isNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentageOf(tt.count, tt.total)
			if tt.isNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 0.001)
		})
	}
}

func TestPercentagesNeverExceedTotal(t *testing.T) {
	// Shares of a whole always sum to at most 100 plus rounding slack.
	counts := []int64{3, 2, 1, 1}
	var total int64
	for _, c := range counts {
		total += c
	}

	var sum float64
	for _, c := range counts {
		p := percentageOf(c, total)
		require.NotNil(t, p)
		sum += *p
	}

	assert.LessOrEqual(t, sum, 100.0+0.01*float64(len(counts)))
}
