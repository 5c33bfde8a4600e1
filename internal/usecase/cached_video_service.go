package usecase

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/infrastructure/cache"
	"github.com/hszk-dev/mediahub/internal/infrastructure/metrics"
)

type CachedVideoServiceConfig struct {
	CacheTTL time.Duration
}

// DefaultCachedVideoServiceConfig returns the default configuration.
func DefaultCachedVideoServiceConfig() CachedVideoServiceConfig {
	return CachedVideoServiceConfig{
		CacheTTL: 5 * time.Minute,
	}
}

// cachedVideoService decorates a VideoService with a read-through video
// cache. Only GetVideo is served from the cache; writes invalidate it.
type cachedVideoService struct {
	delegate VideoService
	cache    cache.VideoCache
	sfGroup  singleflight.Group
	// epoch advances on every invalidation. A fill whose read overlapped an
	// invalidation is dropped so an older read cannot outlive the write.
	epoch atomic.Uint64

	cacheTTL time.Duration
}

// NewCachedVideoService creates a new CachedVideoService wrapping the provided VideoService.
func NewCachedVideoService(
	delegate VideoService,
	videoCache cache.VideoCache,
	cfg CachedVideoServiceConfig,
) VideoService {
	return &cachedVideoService{
		delegate: delegate,
		cache:    videoCache,
		cacheTTL: cfg.CacheTTL,
	}
}

// PublishVideo delegates to the underlying service.
// New videos are cached on first read.
func (s *cachedVideoService) PublishVideo(ctx context.Context, input PublishVideoInput) (*model.Video, error) {
	return s.delegate.PublishVideo(ctx, input)
}

// ListVideos is not cached; feed pages change with every write.
func (s *cachedVideoService) ListVideos(ctx context.Context, input ListVideosInput) ([]*model.Video, error) {
	return s.delegate.ListVideos(ctx, input)
}

// UpdateVideo invalidates the cached entry before delegating, so the next
// GetVideo sees the new fields.
func (s *cachedVideoService) UpdateVideo(ctx context.Context, input UpdateVideoInput) (*model.Video, error) {
	s.invalidate(ctx, input.VideoID, "update")
	video, err := s.delegate.UpdateVideo(ctx, input)
	if err != nil {
		return nil, err
	}
	// A read racing the update may have refilled the cache with the old state.
	s.invalidate(ctx, input.VideoID, "update")
	return video, nil
}

func (s *cachedVideoService) DeleteVideo(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error) {
	video, err := s.delegate.DeleteVideo(ctx, actor, videoID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, videoID, "delete")
	return video, nil
}

func (s *cachedVideoService) TogglePublish(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error) {
	video, err := s.delegate.TogglePublish(ctx, actor, videoID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, videoID, "toggle publish")
	return video, nil
}

// GetVideo reads through the cache. Concurrent misses for one video share a
// single store read; the shared read runs detached from any one caller's
// context, and each caller stops waiting when its own context ends.
func (s *cachedVideoService) GetVideo(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	ch := s.sfGroup.DoChan(videoID.String(), func() (any, error) {
		return s.readThrough(context.WithoutCancel(ctx), videoID)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		outcome := metrics.SingleflightInitiated
		if res.Shared {
			outcome = metrics.SingleflightShared
		}
		metrics.SingleflightRequestsTotal.WithLabelValues(outcome).Inc()

		if res.Err != nil {
			return nil, res.Err
		}
		// Shared results are copied so one caller cannot mutate another's video.
		video := *res.Val.(*model.Video)
		return &video, nil
	}
}

func (s *cachedVideoService) readThrough(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	cached, err := s.cache.Get(ctx, videoID)
	switch {
	case err != nil:
		slog.Warn("video cache read failed, reading from store", "video_id", videoID, "error", err)
	case cached != nil:
		return cached, nil
	}

	epoch := s.epoch.Load()
	video, err := s.delegate.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if s.epoch.Load() != epoch {
		return video, nil
	}
	if err := s.cache.Set(ctx, video, s.cacheTTL); err != nil {
		slog.Warn("video cache fill failed", "video_id", videoID, "error", err)
	}
	// An invalidation may have slipped in between the check and the fill.
	if s.epoch.Load() != epoch {
		s.invalidate(ctx, videoID, "stale fill")
	}
	return video, nil
}

// invalidate removes a video from the cache. Failures are logged only;
// the entry expires with its TTL.
func (s *cachedVideoService) invalidate(ctx context.Context, videoID uuid.UUID, op string) {
	s.epoch.Add(1)
	if err := s.cache.Delete(ctx, videoID); err != nil {
		slog.Warn("failed to invalidate cache",
			"video_id", videoID,
			"operation", op,
			"error", err,
		)
	}
}
