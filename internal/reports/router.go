package reports

import (
	"github.com/gin-gonic/gin"
)

// SetupReportRoutes registers the venue report endpoint. The path lives at the
// engine root, not under the versioned API group, to match the published URL.
func SetupReportRoutes(engine *gin.Engine, controller Controller) {
	engine.GET("/venue_report/:venue_name", controller.GetVenueReport)
}
