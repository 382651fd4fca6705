package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

const Channel = "ledger_events"

// Event types pushed to the live socket when a ledger record changes.
const (
	SessionStarted = "SESSION_STARTED"
	SessionEnded   = "SESSION_ENDED"
	GameStarted    = "GAME_STARTED"
	GameEnded      = "GAME_ENDED"
)

type Event struct {
	Type    string      `json:"type"`
	UserID  uint        `json:"userId"`
	Payload interface{} `json:"payload"`
}

// Publisher fans ledger lifecycle events out to whichever instance holds
// the owning user's live connections. Delivery is advisory: failures are
// logged, never returned to the mutating operation.
type Publisher interface {
	Publish(userID uint, eventType string, payload interface{})
}

type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) Publish(userID uint, eventType string, payload interface{}) {
	event := Event{
		Type:    eventType,
		UserID:  userID,
		Payload: payload,
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Println("Error serializing event:", err)
		return
	}

	if err := p.rdb.Publish(context.Background(), Channel, data).Err(); err != nil {
		log.Println("Error publishing event:", err)
	}
}

// NoopPublisher is used where live updates are not wired up.
type NoopPublisher struct{}

func (NoopPublisher) Publish(userID uint, eventType string, payload interface{}) {}
