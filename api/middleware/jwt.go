package middleware

import (
	"os"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/sebasquinv/PokerLedger/internal/user"
)

func SetupJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(user.JwtCustomClaims)
		},
		SigningKey: []byte(os.Getenv("JWT_SECRET")),
	})
}

// UserIDFromContext reads the authenticated user id placed in the context
// by the JWT middleware. Only valid inside a protected group.
func UserIDFromContext(c echo.Context) uint {
	token := c.Get("user").(*jwt.Token)
	claims := token.Claims.(*user.JwtCustomClaims)
	return claims.Id
}
