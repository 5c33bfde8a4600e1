package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
	"github.com/hszk-dev/mediahub/internal/infrastructure/metrics"
)

// eventEmitter publishes activity events on a best-effort basis.
// A nil publisher disables events.
type eventEmitter struct {
	publisher repository.EventPublisher
}

func (e eventEmitter) emit(ctx context.Context, eventType repository.EventType, actor, subject uuid.UUID) {
	if e.publisher == nil {
		return
	}

	event := repository.NewActivityEvent(eventType, actor, subject)
	if err := e.publisher.Publish(ctx, event); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(string(eventType), metrics.EventStatusError).Inc()
		// The mutation already happened; a lost event only delays counters.
		slog.Warn("failed to publish activity event",
			"event_id", event.ID,
			"type", eventType,
			"subject", subject,
			"error", err,
		)
		return
	}
	metrics.EventsPublishedTotal.WithLabelValues(string(eventType), metrics.EventStatusSuccess).Inc()
}
