package usecase

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/query"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

// mockVideoRepository provides a configurable mock for VideoRepository.
type mockVideoRepository struct {
	createFn  func(ctx context.Context, video *model.Video) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*model.Video, error)
	findFn    func(ctx context.Context, plan query.Plan) ([]*model.Video, error)
	updateFn  func(ctx context.Context, id, owner uuid.UUID, patch model.VideoPatch) (*model.Video, error)
	deleteFn  func(ctx context.Context, id, owner uuid.UUID) (*model.Video, error)
}

func (m *mockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	if m.createFn != nil {
		return m.createFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockVideoRepository) Find(ctx context.Context, plan query.Plan) ([]*model.Video, error) {
	if m.findFn != nil {
		return m.findFn(ctx, plan)
	}
	return []*model.Video{}, nil
}

func (m *mockVideoRepository) Update(ctx context.Context, id, owner uuid.UUID, patch model.VideoPatch) (*model.Video, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, owner, patch)
	}
	return nil, repository.ErrNotFound
}

func (m *mockVideoRepository) Delete(ctx context.Context, id, owner uuid.UUID) (*model.Video, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, owner)
	}
	return nil, repository.ErrNotFound
}

// mockAssetStore provides a configurable mock for AssetStore.
type mockAssetStore struct {
	uploadFn func(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	deleteFn func(ctx context.Context, key string) error

	mu       sync.Mutex
	uploaded []string
	deleted  []string
}

func (m *mockAssetStore) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	m.mu.Lock()
	m.uploaded = append(m.uploaded, key)
	m.mu.Unlock()
	if m.uploadFn != nil {
		return m.uploadFn(ctx, key, reader, size, contentType)
	}
	return "http://cdn.example.com/media/" + key, nil
}

func (m *mockAssetStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	m.deleted = append(m.deleted, key)
	m.mu.Unlock()
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

// mockEventPublisher records published events.
type mockEventPublisher struct {
	publishFn func(ctx context.Context, event repository.ActivityEvent) error

	mu     sync.Mutex
	events []repository.ActivityEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, event repository.ActivityEvent) error {
	if m.publishFn != nil {
		if err := m.publishFn(ctx, event); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventPublisher) types() []repository.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repository.EventType, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Type)
	}
	return out
}

// mockVideoService is a mock implementation of VideoService for testing.
type mockVideoService struct {
	publishVideoFn  func(ctx context.Context, input PublishVideoInput) (*model.Video, error)
	listVideosFn    func(ctx context.Context, input ListVideosInput) ([]*model.Video, error)
	getVideoFn      func(ctx context.Context, videoID uuid.UUID) (*model.Video, error)
	updateVideoFn   func(ctx context.Context, input UpdateVideoInput) (*model.Video, error)
	deleteVideoFn   func(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error)
	togglePublishFn func(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error)
	getVideoCount   atomic.Int32
}

func (m *mockVideoService) PublishVideo(ctx context.Context, input PublishVideoInput) (*model.Video, error) {
	if m.publishVideoFn != nil {
		return m.publishVideoFn(ctx, input)
	}
	return nil, nil
}

func (m *mockVideoService) ListVideos(ctx context.Context, input ListVideosInput) ([]*model.Video, error) {
	if m.listVideosFn != nil {
		return m.listVideosFn(ctx, input)
	}
	return nil, nil
}

func (m *mockVideoService) GetVideo(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	m.getVideoCount.Add(1)
	if m.getVideoFn != nil {
		return m.getVideoFn(ctx, videoID)
	}
	return nil, nil
}

func (m *mockVideoService) UpdateVideo(ctx context.Context, input UpdateVideoInput) (*model.Video, error) {
	if m.updateVideoFn != nil {
		return m.updateVideoFn(ctx, input)
	}
	return nil, nil
}

func (m *mockVideoService) DeleteVideo(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error) {
	if m.deleteVideoFn != nil {
		return m.deleteVideoFn(ctx, actor, videoID)
	}
	return nil, nil
}

func (m *mockVideoService) TogglePublish(ctx context.Context, actor, videoID uuid.UUID) (*model.Video, error) {
	if m.togglePublishFn != nil {
		return m.togglePublishFn(ctx, actor, videoID)
	}
	return nil, nil
}

// mockVideoCache is a mock implementation of VideoCache for testing.
type mockVideoCache struct {
	mu       sync.RWMutex
	data     map[uuid.UUID]*model.Video
	getFn    func(ctx context.Context, videoID uuid.UUID) (*model.Video, error)
	setFn    func(ctx context.Context, video *model.Video, ttl time.Duration) error
	deleteFn func(ctx context.Context, videoID uuid.UUID) error
}

func newMockVideoCache() *mockVideoCache {
	return &mockVideoCache{
		data: make(map[uuid.UUID]*model.Video),
	}
}

func (m *mockVideoCache) Get(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	if m.getFn != nil {
		return m.getFn(ctx, videoID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[videoID], nil
}

func (m *mockVideoCache) Set(ctx context.Context, video *model.Video, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, video, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[video.ID] = video
	return nil
}

func (m *mockVideoCache) Delete(ctx context.Context, videoID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, videoID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, videoID)
	return nil
}

func (m *mockVideoCache) has(videoID uuid.UUID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[videoID]
	return ok
}

// mockSubscriberCounter keeps counts in a map.
type mockSubscriberCounter struct {
	mu     sync.Mutex
	counts map[uuid.UUID]int64
	err    error
}

func newMockSubscriberCounter() *mockSubscriberCounter {
	return &mockSubscriberCounter{counts: make(map[uuid.UUID]int64)}
}

func (m *mockSubscriberCounter) Incr(ctx context.Context, channel uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.counts[channel]++
	return m.counts[channel], nil
}

func (m *mockSubscriberCounter) Decr(ctx context.Context, channel uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	if m.counts[channel] > 0 {
		m.counts[channel]--
	}
	return m.counts[channel], nil
}

func (m *mockSubscriberCounter) Get(ctx context.Context, channel uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return m.counts[channel], nil
}
