package websocket

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// LiveHandler upgrades an authenticated connection and registers it for
// ledger lifecycle events. The socket is push-only; inbound frames are
// read solely to notice the disconnect.
func LiveHandler(c echo.Context) error {
	tokenString := c.QueryParam("token")

	userID, err := ValidateJWT(tokenString)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Println("WebSocket upgrade failed:", err)
		return err
	}

	client := &Client{UserID: userID, Conn: ws}
	RegisterClient(client)
	log.Printf("Live connection opened for user %d", userID)
	go listenForDisconnect(client)

	return nil
}

func listenForDisconnect(client *Client) {
	defer func() {
		log.Printf("Live connection closed for user %d", client.UserID)
		UnregisterClient(client)
		client.Conn.Close()
	}()

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func ValidateJWT(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, errors.New("Empty token")
	}

	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Invalid token")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return 0, fmt.Errorf("Invalid token: %v", err)
	}

	userID, ok := claims["id"].(float64)
	if !ok {
		return 0, errors.New("user id not found in token claims")
	}

	return uint(userID), nil
}
