// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mediahub"

var (
	// CacheOperationsTotal tracks cache operations (get, set, delete).
	// Labels:
	//   - operation: get, set, delete
	//   - status: hit, miss, success, error
	//   - cache_type: redis
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Total number of cache operations",
		},
		[]string{"operation", "status", "cache_type"},
	)

	// StoreOperationsTotal tracks statements and commands sent to the record store.
	// Labels:
	//   - store: postgres, mongo
	//   - operation: select, insert, update, delete, other (postgres);
	//     the command name (mongo)
	//   - status: success, error
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Total number of record store operations",
		},
		[]string{"store", "operation", "status"},
	)

	// SingleflightRequestsTotal tracks singleflight behavior.
	// Labels:
	//   - result: initiated (new execution), shared (reused result)
	SingleflightRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "singleflight_requests_total",
			Help:      "Total number of singleflight requests",
		},
		[]string{"result"},
	)

	// SubscriptionTogglesTotal tracks subscription toggles.
	// Labels:
	//   - result: subscribed, unsubscribed, conflict
	SubscriptionTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subscription_toggles_total",
			Help:      "Total number of subscription toggles",
		},
		[]string{"result"},
	)

	// EventsPublishedTotal tracks activity event publishing.
	// Labels:
	//   - type: subscription.created, video.published, ...
	//   - status: success, error
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of activity events published",
		},
		[]string{"type", "status"},
	)

	// EventsProcessedTotal tracks activity events handled by the worker.
	// Labels:
	//   - type: subscription.created, video.published, ...
	//   - status: success, error, dropped
	EventsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_processed_total",
			Help:      "Total number of activity events processed by the worker",
		},
		[]string{"type", "status"},
	)
)

// Cache operation status constants.
const (
	CacheStatusHit     = "hit"
	CacheStatusMiss    = "miss"
	CacheStatusSuccess = "success"
	CacheStatusError   = "error"
)

// Cache operation type constants.
const (
	CacheOpGet    = "get"
	CacheOpSet    = "set"
	CacheOpDelete = "delete"
)

// Cache type constants.
const (
	CacheTypeRedis = "redis"
)

// Store constants.
const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

// SQL statement type constants.
const (
	DBQuerySelect = "select"
	DBQueryInsert = "insert"
	DBQueryUpdate = "update"
	DBQueryDelete = "delete"
	DBQueryOther  = "other"
)

// Store operation status constants.
const (
	StoreStatusSuccess = "success"
	StoreStatusError   = "error"
)

// Singleflight result constants.
const (
	SingleflightInitiated = "initiated"
	SingleflightShared    = "shared"
)

// Subscription toggle result constants.
const (
	ToggleSubscribed   = "subscribed"
	ToggleUnsubscribed = "unsubscribed"
	ToggleConflict     = "conflict"
)

// Event status constants.
const (
	EventStatusSuccess = "success"
	EventStatusError   = "error"
	EventStatusDropped = "dropped"
)
