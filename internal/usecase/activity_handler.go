package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hszk-dev/mediahub/internal/domain/repository"
	"github.com/hszk-dev/mediahub/internal/infrastructure/cache"
	"github.com/hszk-dev/mediahub/internal/infrastructure/metrics"
)

// ActivityHandlerConfig holds configuration for ActivityHandler.
type ActivityHandlerConfig struct {
	// MaxRetries is how many times a failed event is redelivered before it is dropped.
	MaxRetries int
}

// DefaultActivityHandlerConfig returns the default configuration.
func DefaultActivityHandlerConfig() ActivityHandlerConfig {
	return ActivityHandlerConfig{MaxRetries: 3}
}

// ActivityHandler applies activity events to derived state, currently the
// per-channel subscriber counters.
type ActivityHandler struct {
	counter    cache.SubscriberCounter
	maxRetries int
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(counter cache.SubscriberCounter, cfg ActivityHandlerConfig) *ActivityHandler {
	return &ActivityHandler{
		counter:    counter,
		maxRetries: cfg.MaxRetries,
	}
}

// Handle processes one event. A returned error makes the consumer redeliver
// the event with an incremented retry count.
func (h *ActivityHandler) Handle(ctx context.Context, event repository.ActivityEvent) error {
	if event.RetryCount > h.maxRetries {
		metrics.EventsProcessedTotal.WithLabelValues(string(event.Type), metrics.EventStatusDropped).Inc()
		slog.Error("dropping activity event after max retries",
			"event_id", event.ID,
			"type", event.Type,
			"retry_count", event.RetryCount,
		)
		return nil
	}

	if err := h.apply(ctx, event); err != nil {
		metrics.EventsProcessedTotal.WithLabelValues(string(event.Type), metrics.EventStatusError).Inc()
		return err
	}

	metrics.EventsProcessedTotal.WithLabelValues(string(event.Type), metrics.EventStatusSuccess).Inc()
	return nil
}

func (h *ActivityHandler) apply(ctx context.Context, event repository.ActivityEvent) error {
	switch event.Type {
	case repository.EventSubscriptionCreated:
		n, err := h.counter.Incr(ctx, event.Subject)
		if err != nil {
			return fmt.Errorf("increment subscriber count: %w", err)
		}
		slog.Debug("subscriber count incremented", "channel_id", event.Subject, "count", n)
	case repository.EventSubscriptionRemoved:
		n, err := h.counter.Decr(ctx, event.Subject)
		if err != nil {
			return fmt.Errorf("decrement subscriber count: %w", err)
		}
		slog.Debug("subscriber count decremented", "channel_id", event.Subject, "count", n)
	default:
		slog.Debug("ignoring activity event", "event_id", event.ID, "type", event.Type)
	}
	return nil
}
