package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sebasquinv/PokerLedger/api/middleware"
	"github.com/sebasquinv/PokerLedger/internal/user"
)

type UserHandler struct {
	service *user.UserService
}

func RegisterUserRoutes(g *echo.Group, service *user.UserService) {
	h := &UserHandler{service: service}
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
}

func RegisterProfileRoutes(g *echo.Group, service *user.UserService) {
	h := &UserHandler{service: service}
	g.GET("/me", h.GetProfile)
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	token, err := h.service.Signup(user.User{Username: req.Username, Password: req.Password}, req.Email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"token": token})
}

func (h *UserHandler) Login(c echo.Context) error {
	var u user.User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	token, err := h.service.Login(u)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	profile, err := h.service.GetProfile(userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}
