package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/sebasquinv/PokerLedger/internal/events"
)

// StartEventSubscriber bridges the redis event channel to local live
// connections. Every instance subscribes; each delivers an event only to
// the connections it holds for the owning user.
func StartEventSubscriber(rdb *redis.Client) error {
	sub := rdb.Subscribe(context.Background(), events.Channel)
	if _, err := sub.Receive(context.Background()); err != nil {
		log.Println("error subscribing to events", err)
		return fmt.Errorf("error subscribing to events %w", err)
	}

	ch := sub.Channel()

	log.Printf("Subscribed to %s channel", events.Channel)
	go func() {
		for msg := range ch {
			forwardEvent(msg.Payload)
		}
	}()

	return nil
}

func forwardEvent(payload string) {
	var event events.Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		log.Println("Error decoding event:", err)
		return
	}

	SendToUser(event.UserID, OutgoingMessage{
		Type:    event.Type,
		Payload: event.Payload,
	})
}
