package reports

import (
	"context"
	"math"
	"time"

	"venuelytics/internal/shared/config"

	"golang.org/x/sync/errgroup"
)

// Service defines the report service interface
type Service interface {
	GetVenueReport(ctx context.Context, venueName string) (*VenueReport, error)
}

// service implements the Service interface
type service struct {
	repo        Repository
	periodDays  int
	trendMonths int
	topLimit    int
}

// NewService creates a new report service instance
func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:        repo,
		periodDays:  cfg.Report.PeriodDays,
		trendMonths: cfg.Report.TrendMonths,
		topLimit:    cfg.Report.TopLimit,
	}
}

// GetVenueReport resolves the venue name and assembles the full report. A
// failure in any aggregate aborts the whole report; no partial payload is
// ever returned.
func (s *service) GetVenueReport(ctx context.Context, venueName string) (*VenueReport, error) {
	venueID, err := s.repo.VenueIDByName(ctx, venueName)
	if err != nil {
		return nil, err
	}

	return s.buildReport(ctx, venueID)
}

func (s *service) buildReport(ctx context.Context, venueID int64) (*VenueReport, error) {
	ownerID, err := s.repo.VenueOwner(ctx, venueID)
	if err != nil {
		return nil, err
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -s.periodDays)
	// Trend window is N*30 days, not N calendar months.
	trendStart := end.AddDate(0, 0, -s.trendMonths*30)

	var (
		header      *VenueHeader
		stats       *PeriodStats
		byGender    []GenderMonthlyBookings
		eventTypes  []EventTypeStats
		totalEvents int64
		topClients  []TopClient
	)

	// The five aggregates are independent; run them in parallel and let the
	// first failure cancel the rest.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		header, err = s.repo.HeaderStats(gctx, venueID, ownerID)
		return err
	})

	g.Go(func() error {
		var err error
		stats, err = s.repo.PeriodStats(gctx, venueID, ownerID, start, end)
		return err
	})

	g.Go(func() error {
		var err error
		byGender, err = s.repo.BookingsByGender(gctx, venueID, trendStart)
		return err
	})

	g.Go(func() error {
		counts, err := s.repo.EventTypeCounts(gctx, venueID, s.topLimit)
		if err != nil {
			return err
		}
		total, err := s.repo.TotalEvents(gctx, venueID)
		if err != nil {
			return err
		}
		eventTypes, totalEvents = counts, total
		return nil
	})

	g.Go(func() error {
		var err error
		topClients, err = s.repo.TopClients(gctx, venueID, s.topLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range eventTypes {
		eventTypes[i].Percentage = percentageOf(eventTypes[i].EventCount, totalEvents)
	}
	if byGender == nil {
		byGender = []GenderMonthlyBookings{}
	}
	if eventTypes == nil {
		eventTypes = []EventTypeStats{}
	}
	if topClients == nil {
		topClients = []TopClient{}
	}

	info := VenueInfo{ProfileImageURL: header.VenueImageURL}
	if header.VenueName != nil {
		info.Name = *header.VenueName
	}

	report := &VenueReport{
		GeneratedAt: end,
		VenueID:     venueID,
		VenueInfo:   info,
		HeaderStats: HeaderStats{
			TotalFollowers:    header.TotalFollowers,
			TotalBookings:     header.TotalBookings,
			CompletedBookings: header.CompletedBookings,
		},
		AnalyticsPage: AnalyticsPage{
			Period: ReportPeriod{
				Start: start.Format("2006-01-02"),
				End:   end.Format("2006-01-02"),
			},
			Stats: *stats,
		},
		Charts: Charts{
			BookingsByGenderOverTime: byGender,
			PopularEventTypes:        eventTypes,
		},
		TopClients: topClients,
	}

	return report, nil
}

// percentageOf returns count's share of total as a percentage rounded to two
// decimals, or nil when total is zero.
func percentageOf(count, total int64) *float64 {
	if total == 0 {
		return nil
	}
	p := math.Round(float64(count)*100/float64(total)*100) / 100
	return &p
}
