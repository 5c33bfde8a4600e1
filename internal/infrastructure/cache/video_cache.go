package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/model"
)

// VideoCache defines the interface for caching video metadata.
// Implementations should handle serialization/deserialization transparently.
type VideoCache interface {
	// Get retrieves a video from cache by ID.
	// Returns nil, nil if the video is not found in cache (cache miss).
	Get(ctx context.Context, videoID uuid.UUID) (*model.Video, error)

	// Set stores a video in cache with the specified TTL.
	Set(ctx context.Context, video *model.Video, ttl time.Duration) error

	// Delete removes a video from cache by ID.
	// Returns nil if the video was not in cache.
	Delete(ctx context.Context, videoID uuid.UUID) error
}

// SubscriberCounter keeps a per-channel subscriber count, maintained
// asynchronously from subscription events.
type SubscriberCounter interface {
	// Incr adds one subscriber to channel and returns the new count.
	Incr(ctx context.Context, channel uuid.UUID) (int64, error)

	// Decr removes one subscriber from channel. The count never drops below zero.
	Decr(ctx context.Context, channel uuid.UUID) (int64, error)

	// Get returns the current count, 0 if none was recorded.
	Get(ctx context.Context, channel uuid.UUID) (int64, error)
}
