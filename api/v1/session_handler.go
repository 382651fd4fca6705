package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sebasquinv/PokerLedger/api/middleware"
	"github.com/sebasquinv/PokerLedger/internal/session"
)

type SessionHandler struct {
	service *session.SessionService
}

func RegisterSessionRoutes(g *echo.Group, service *session.SessionService) {
	h := &SessionHandler{service: service}
	g.POST("", h.StartSession)
	g.PUT("/:id/end", h.EndSession)
	g.GET("/active", h.GetActiveSession)
}

func (h *SessionHandler) StartSession(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	s, err := h.service.StartSession(userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SessionHandler) EndSession(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session ID")
	}

	if err := h.service.EndSession(userID, sessionID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ended": true})
}

func (h *SessionHandler) GetActiveSession(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	s, err := h.service.GetActiveSession(userID)
	if err != nil {
		return httpError(err)
	}
	// s is null in the response body when no session is active
	return c.JSON(http.StatusOK, echo.Map{"session": s})
}
