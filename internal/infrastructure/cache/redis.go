package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/infrastructure/metrics"
)

const videoKeyPrefix = "video:"

// videoEntry is the Redis hash layout of a cached video. Times are stored as
// unix nanoseconds so they round-trip exactly.
type videoEntry struct {
	ID          string  `redis:"id"`
	Owner       string  `redis:"owner"`
	Title       string  `redis:"title"`
	Description string  `redis:"description"`
	Duration    float64 `redis:"duration"`
	VideoFile   string  `redis:"video_file"`
	Thumbnail   string  `redis:"thumbnail"`
	IsPublished bool    `redis:"is_published"`
	CreatedAt   int64   `redis:"created_at"`
	UpdatedAt   int64   `redis:"updated_at"`
}

func entryFromVideo(v *model.Video) videoEntry {
	return videoEntry{
		ID:          v.ID.String(),
		Owner:       v.Owner.String(),
		Title:       v.Title,
		Description: v.Description,
		Duration:    v.Duration,
		VideoFile:   v.VideoFile,
		Thumbnail:   v.Thumbnail,
		IsPublished: v.IsPublished,
		CreatedAt:   v.CreatedAt.UnixNano(),
		UpdatedAt:   v.UpdatedAt.UnixNano(),
	}
}

func (e videoEntry) video() (*model.Video, error) {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return nil, fmt.Errorf("parse video id: %w", err)
	}
	owner, err := uuid.Parse(e.Owner)
	if err != nil {
		return nil, fmt.Errorf("parse owner id: %w", err)
	}
	return &model.Video{
		ID:          id,
		Owner:       owner,
		Title:       e.Title,
		Description: e.Description,
		Duration:    e.Duration,
		VideoFile:   e.VideoFile,
		Thumbnail:   e.Thumbnail,
		IsPublished: e.IsPublished,
		CreatedAt:   time.Unix(0, e.CreatedAt).UTC(),
		UpdatedAt:   time.Unix(0, e.UpdatedAt).UTC(),
	}, nil
}

// RedisVideoCache stores each video as a hash under video:<id>.
type RedisVideoCache struct {
	client *redis.Client
}

var _ VideoCache = (*RedisVideoCache)(nil)

func NewRedisVideoCache(client *redis.Client) *RedisVideoCache {
	return &RedisVideoCache{client: client}
}

// Get returns nil, nil when the video is not cached.
func (c *RedisVideoCache) Get(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	res := c.client.HGetAll(ctx, videoKey(videoID))
	fields, err := res.Result()
	if err != nil {
		observe(metrics.CacheOpGet, metrics.CacheStatusError)
		return nil, fmt.Errorf("redis hgetall: %w", err)
	}
	if len(fields) == 0 {
		observe(metrics.CacheOpGet, metrics.CacheStatusMiss)
		return nil, nil
	}

	var entry videoEntry
	if err := res.Scan(&entry); err != nil {
		observe(metrics.CacheOpGet, metrics.CacheStatusError)
		return nil, fmt.Errorf("scan cached video: %w", err)
	}
	video, err := entry.video()
	if err != nil {
		observe(metrics.CacheOpGet, metrics.CacheStatusError)
		return nil, err
	}

	observe(metrics.CacheOpGet, metrics.CacheStatusHit)
	return video, nil
}

// Set replaces the hash and its TTL in one MULTI block, so a reader never
// sees a hash without an expiry.
func (c *RedisVideoCache) Set(ctx context.Context, video *model.Video, ttl time.Duration) error {
	key := videoKey(video.ID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, entryFromVideo(video))
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		observe(metrics.CacheOpSet, metrics.CacheStatusError)
		return fmt.Errorf("redis hset: %w", err)
	}

	observe(metrics.CacheOpSet, metrics.CacheStatusSuccess)
	return nil
}

// Delete is a no-op for uncached videos.
func (c *RedisVideoCache) Delete(ctx context.Context, videoID uuid.UUID) error {
	if err := c.client.Del(ctx, videoKey(videoID)).Err(); err != nil {
		observe(metrics.CacheOpDelete, metrics.CacheStatusError)
		return fmt.Errorf("redis del: %w", err)
	}

	observe(metrics.CacheOpDelete, metrics.CacheStatusSuccess)
	return nil
}

func videoKey(id uuid.UUID) string {
	return videoKeyPrefix + id.String()
}

func observe(op, status string) {
	metrics.CacheOperationsTotal.WithLabelValues(op, status, metrics.CacheTypeRedis).Inc()
}
