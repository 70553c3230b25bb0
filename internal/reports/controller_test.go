package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	report  *VenueReport
	err     error
	gotName string
}

func (s *stubService) GetVenueReport(ctx context.Context, venueName string) (*VenueReport, error) {
	s.gotName = venueName
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func newTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	SetupReportRoutes(engine, NewController(svc))
	return engine
}

func performRequest(t *testing.T, engine *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(w, req)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func sampleReport() *VenueReport {
	return &VenueReport{
		GeneratedAt: time.Now().UTC(),
		VenueID:     1,
		VenueInfo:   VenueInfo{Name: "RocoMamas Kenya"},
		HeaderStats: HeaderStats{TotalFollowers: 3, TotalBookings: 3, CompletedBookings: 2},
		AnalyticsPage: AnalyticsPage{
			Period: ReportPeriod{Start: "2026-07-30", End: "2026-08-29"},
		},
		Charts: Charts{
			BookingsByGenderOverTime: []GenderMonthlyBookings{},
			PopularEventTypes:        []EventTypeStats{},
		},
		TopClients: []TopClient{},
	}
}

func TestGetVenueReportSuccess(t *testing.T) {
	svc := &stubService{report: sampleReport()}
	engine := newTestRouter(svc)

	w, body := performRequest(t, engine, "/venue_report/RocoMamas%20Kenya")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "RocoMamas Kenya", svc.gotName)

	var status string
	require.NoError(t, json.Unmarshal(body["status"], &status))
	assert.Equal(t, "success", status)

	// Success responses carry data, never a message.
	assert.Contains(t, body, "data")
	assert.NotContains(t, body, "message")

	var report VenueReport
	require.NoError(t, json.Unmarshal(body["data"], &report))
	assert.Equal(t, int64(3), report.HeaderStats.TotalFollowers)
	assert.Equal(t, int64(2), report.HeaderStats.CompletedBookings)
	assert.NotNil(t, report.TopClients)
}

func TestGetVenueReportNotFound(t *testing.T) {
	svc := &stubService{err: ErrVenueNotFound}
	engine := newTestRouter(svc)

	w, body := performRequest(t, engine, "/venue_report/Imaginary%20Venue%20Hall")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var status, message string
	require.NoError(t, json.Unmarshal(body["status"], &status))
	require.NoError(t, json.Unmarshal(body["message"], &message))
	assert.Equal(t, "error", status)
	assert.Equal(t, "Venue 'Imaginary Venue Hall' not found.", message)

	// Error responses carry a message, never data.
	assert.NotContains(t, body, "data")
}

func TestGetVenueReportLookupIsCaseSensitive(t *testing.T) {
	// The store only knows "RocoMamas Kenya"; a lowercase request misses.
	svc := &stubService{err: ErrVenueNotFound}
	engine := newTestRouter(svc)

	w, body := performRequest(t, engine, "/venue_report/rocomamas%20kenya")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "rocomamas kenya", svc.gotName)

	var message string
	require.NoError(t, json.Unmarshal(body["message"], &message))
	assert.Equal(t, "Venue 'rocomamas kenya' not found.", message)
}

func TestGetVenueReportInternalFailure(t *testing.T) {
	svc := &stubService{err: errors.New("failed to get header stats: connection refused")}
	engine := newTestRouter(svc)

	w, body := performRequest(t, engine, "/venue_report/RocoMamas%20Kenya")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var status, message string
	require.NoError(t, json.Unmarshal(body["status"], &status))
	require.NoError(t, json.Unmarshal(body["message"], &message))
	assert.Equal(t, "error", status)
	assert.Contains(t, message, "connection refused")
}

func TestGetVenueReportDecodesPathSegment(t *testing.T) {
	svc := &stubService{report: sampleReport()}
	engine := newTestRouter(svc)

	w, _ := performRequest(t, engine, "/venue_report/K1%20Klub%20%26%20Lounge")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "K1 Klub & Lounge", svc.gotName)
}
