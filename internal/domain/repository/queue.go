package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType identifies what happened in an ActivityEvent.
type EventType string

const (
	EventSubscriptionCreated EventType = "subscription.created"
	EventSubscriptionRemoved EventType = "subscription.removed"
	EventVideoPublished      EventType = "video.published"
	EventVideoUnpublished    EventType = "video.unpublished"
	EventVideoDeleted        EventType = "video.deleted"
)

// ActivityEvent is a fact published after a successful mutation.
// For subscription events Actor is the subscriber and Subject the channel;
// for video events Actor is the owner and Subject the video.
type ActivityEvent struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	Actor      uuid.UUID `json:"actor"`
	Subject    uuid.UUID `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
	RetryCount int       `json:"retry_count"`
}

// NewActivityEvent creates an event stamped with the current time.
func NewActivityEvent(eventType EventType, actor, subject uuid.UUID) ActivityEvent {
	return ActivityEvent{
		ID:         uuid.New(),
		Type:       eventType,
		Actor:      actor,
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
	}
}

// EventPublisher publishes activity events.
type EventPublisher interface {
	Publish(ctx context.Context, event ActivityEvent) error
}

// EventHandler processes one delivered event. A non-nil error asks for a
// redelivery with an incremented RetryCount.
type EventHandler func(ctx context.Context, event ActivityEvent) error

// MessageQueue defines the interface for message queue operations.
// Implementations should be provided by the infrastructure layer (e.g., RabbitMQ).
type MessageQueue interface {
	EventPublisher

	// ConsumeEvents starts consuming activity events from the queue.
	// Blocks until ctx is cancelled or the delivery channel closes.
	ConsumeEvents(ctx context.Context, handler EventHandler) error

	// Close gracefully closes the connection to the message queue.
	Close() error
}
