package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/query"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

// VideoRepository implements repository.VideoRepository in memory.
type VideoRepository struct {
	s *Store
}

func NewVideoRepository(s *Store) *VideoRepository {
	return &VideoRepository{s: s}
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.videos.insert(video.ID, *video) {
		return repository.ErrDuplicate
	}
	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.videos.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func (r *VideoRepository) Find(ctx context.Context, plan query.Plan) ([]*model.Video, error) {
	r.s.mu.RLock()
	rows := r.s.videos.ordered()
	r.s.mu.RUnlock()

	rows = runPlan(rows, plan, videoField)
	out := make([]*model.Video, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *VideoRepository) Update(ctx context.Context, id, owner uuid.UUID, patch model.VideoPatch) (*model.Video, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.videos.get(id)
	if !ok || v.Owner != owner {
		return nil, repository.ErrNotFound
	}
	v.Apply(patch)
	r.s.videos.put(id, v)
	return &v, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id, owner uuid.UUID) (*model.Video, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.videos.get(id)
	if !ok || v.Owner != owner {
		return nil, repository.ErrNotFound
	}
	r.s.videos.remove(id)
	return &v, nil
}

func videoField(v model.Video, field string) any {
	switch field {
	case query.FieldID:
		return v.ID
	case query.FieldOwner:
		return v.Owner
	case query.FieldTitle:
		return v.Title
	case query.FieldDescription:
		return v.Description
	case query.FieldDuration:
		return v.Duration
	case query.FieldIsPublished:
		return v.IsPublished
	case query.FieldCreatedAt:
		return v.CreatedAt
	case query.FieldUpdatedAt:
		return v.UpdatedAt
	}
	return nil
}

var _ repository.VideoRepository = (*VideoRepository)(nil)
