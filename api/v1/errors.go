package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sebasquinv/PokerLedger/internal/apperrors"
)

// httpError maps a service error to an echo HTTP error, preserving the
// status code carried by an AppError.
func httpError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.Code, appErr.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
