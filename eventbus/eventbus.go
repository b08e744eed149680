package eventbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Topic wraps a base topic name.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// Event is the payload envelope published to a topic.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// NewEvent wraps a payload into an Event envelope.
func NewEvent(eventType string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   raw,
	}, nil
}

// EventBus abstracts event publishing so the services stay unaware of the
// broker. Publishing is fire-and-forget; read models are always recomputed
// from the store, so consumers are purely notification-driven.
type EventBus interface {
	Publish(ctx context.Context, topic Topic, event Event) error
	Close()
}
