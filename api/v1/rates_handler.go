package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sebasquinv/PokerLedger/internal/rates"
)

type RatesHandler struct {
	service *rates.RateService
}

func RegisterRatesRoutes(g *echo.Group, service *rates.RateService) {
	h := &RatesHandler{service: service}
	g.GET("/btc", h.GetBtcUsd)
}

// GetBtcUsd returns the cached spot rate. A zero value means the provider
// is unavailable; clients fall back to showing µBTC amounts only. An
// optional ubtc query param returns that amount converted to USD.
func (h *RatesHandler) GetBtcUsd(c echo.Context) error {
	rate := h.service.GetBtcUsd(c.Request().Context())

	if ubtcParam := c.QueryParam("ubtc"); ubtcParam != "" {
		ubtc, err := strconv.ParseInt(ubtcParam, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid ubtc amount")
		}
		return c.JSON(http.StatusOK, echo.Map{
			"usd":       rate,
			"ubtc":      ubtc,
			"fiatValue": rates.FiatValue(ubtc, rate),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"usd": rate})
}
