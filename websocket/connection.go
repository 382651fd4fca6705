package websocket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	UserID uint
	Conn   *websocket.Conn
	ConnMu sync.Mutex
}

type OutgoingMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

var (
	clientsMu sync.RWMutex
	clients   = map[uint][]*Client{}
)

func RegisterClient(client *Client) {
	clientsMu.Lock()
	defer clientsMu.Unlock()
	clients[client.UserID] = append(clients[client.UserID], client)
}

func UnregisterClient(client *Client) {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	conns := clients[client.UserID]
	remaining := make([]*Client, 0, len(conns))
	for _, c := range conns {
		if c != client {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == 0 {
		delete(clients, client.UserID)
		return
	}
	clients[client.UserID] = remaining
}

// SendToUser pushes a message to every live connection the user holds on
// this instance. Connections on other instances get the event through the
// redis subscriber.
func SendToUser(userID uint, msg OutgoingMessage) {
	clientsMu.RLock()
	conns := make([]*Client, len(clients[userID]))
	copy(conns, clients[userID])
	clientsMu.RUnlock()

	for _, client := range conns {
		client.ConnMu.Lock()
		if err := client.Conn.WriteJSON(msg); err != nil {
			log.Println("Error sending msg to user", userID, ":", err)
		}
		client.ConnMu.Unlock()
	}
}
