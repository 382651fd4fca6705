package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sebasquinv/PokerLedger/api/middleware"
	"github.com/sebasquinv/PokerLedger/internal/analytics"
)

type AnalyticsHandler struct {
	service *analytics.AnalyticsService
}

func RegisterAnalyticsRoutes(g *echo.Group, service *analytics.AnalyticsService) {
	h := &AnalyticsHandler{service: service}
	g.GET("/week", h.GetWeekStats)
	g.GET("/chart", h.GetChartSeries)
}

func (h *AnalyticsHandler) GetWeekStats(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	stats, err := h.service.GetWeekStats(userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) GetChartSeries(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	days, err := strconv.Atoi(c.QueryParam("days"))
	if err != nil {
		days = 30
	}

	series, errSeries := h.service.GetChartSeries(userID, days)
	if errSeries != nil {
		return httpError(errSeries)
	}
	return c.JSON(http.StatusOK, series)
}
