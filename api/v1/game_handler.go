package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sebasquinv/PokerLedger/api/middleware"
	"github.com/sebasquinv/PokerLedger/internal/game"
)

type GameHandler struct {
	service *game.GameService
}

func RegisterGameRoutes(g *echo.Group, service *game.GameService) {
	h := &GameHandler{service: service}
	g.POST("", h.StartGame)
	g.PUT("/:id/end", h.EndGame)
	g.GET("/active", h.GetActiveGames)
	g.GET("/history", h.GetGameHistory)
}

func (h *GameHandler) StartGame(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	var req game.StartGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	created, err := h.service.StartGame(userID, &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *GameHandler) EndGame(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	gameID := c.Param("id")
	if gameID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game ID")
	}

	var req game.EndGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid end stack value")
	}

	if err := h.service.EndGame(userID, gameID, &req); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ended": true})
}

func (h *GameHandler) GetActiveGames(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	games, err := h.service.GetActiveGames(userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, games)
}

func (h *GameHandler) GetGameHistory(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 0
	}
	pageSize, err := strconv.Atoi(c.QueryParam("pageSize"))
	if err != nil {
		pageSize = game.DefaultPageSize
	}

	history, errHistory := h.service.GetGameHistory(userID, &game.GamePageRequest{Page: page, PageSize: pageSize})
	if errHistory != nil {
		return httpError(errHistory)
	}
	return c.JSON(http.StatusOK, history)
}
