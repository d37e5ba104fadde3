package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-admin/internal/repository"
)

// AnalyticsHandler serves the dashboard aggregate endpoint.
type AnalyticsHandler struct {
	Analytics *repository.AnalyticsRepo
}

// NewAnalyticsHandler constructs an AnalyticsHandler.
func NewAnalyticsHandler(analytics *repository.AnalyticsRepo) *AnalyticsHandler {
	if analytics == nil {
		panic("nil repository passed to NewAnalyticsHandler")
	}
	return &AnalyticsHandler{Analytics: analytics}
}

// Dashboard handles GET /api/analytics/dashboard.  The counters are
// recomputed from the store on every request.
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Analytics.Dashboard())
}
