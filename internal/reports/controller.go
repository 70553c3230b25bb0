package reports

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"venuelytics/internal/shared/utils/response"
	"venuelytics/pkg/logger"
)

// Controller defines the report controller interface
type Controller interface {
	GetVenueReport(c *gin.Context)
}

// controller implements the Controller interface
type controller struct {
	service Service
}

// NewController creates a new report controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetVenueReport handles GET /venue_report/:venue_name
func (ctrl *controller) GetVenueReport(c *gin.Context) {
	venueName := decodeVenueName(c.Param("venue_name"))
	appLogger := logger.GetDefault()
	start := time.Now()

	report, err := ctrl.service.GetVenueReport(c.Request.Context(), venueName)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			appLogger.LogVenueNotFound(c.Request.Context(), venueName)
			response.Error(c, http.StatusNotFound, fmt.Sprintf("Venue '%s' not found.", venueName))
			return
		}
		appLogger.LogHTTPError(c, err, http.StatusInternalServerError)
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	appLogger.LogReportGenerated(c.Request.Context(), venueName, report.VenueID, time.Since(start))
	response.Success(c, http.StatusOK, report)
}

// decodeVenueName percent-decodes the path segment. The router normally hands
// it over decoded already; a segment that fails to unescape is used verbatim.
func decodeVenueName(raw string) string {
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
