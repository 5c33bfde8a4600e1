package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/event"

	"github.com/hszk-dev/mediahub/internal/infrastructure/metrics"
)

// handshake and heartbeat commands are not record operations.
var ignoredCommands = map[string]bool{
	"hello":        true,
	"isMaster":     true,
	"ismaster":     true,
	"ping":         true,
	"saslStart":    true,
	"saslContinue": true,
	"endSessions":  true,
	"buildInfo":    true,
}

// newCommandMonitor counts driver commands in StoreOperationsTotal.
func newCommandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			observeCommand(e.CommandName, metrics.StoreStatusSuccess)
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			observeCommand(e.CommandName, metrics.StoreStatusError)
		},
	}
}

func observeCommand(name, status string) {
	if ignoredCommands[name] {
		return
	}
	metrics.StoreOperationsTotal.WithLabelValues(metrics.StoreMongo, name, status).Inc()
}
