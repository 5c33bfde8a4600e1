package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/query"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

// CommentRepository implements repository.CommentRepository in memory.
type CommentRepository struct {
	s *Store
}

func NewCommentRepository(s *Store) *CommentRepository {
	return &CommentRepository{s: s}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.comments.insert(comment.ID, *comment) {
		return repository.ErrDuplicate
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *CommentRepository) Find(ctx context.Context, plan query.Plan) ([]*model.Comment, error) {
	r.s.mu.RLock()
	rows := r.s.comments.ordered()
	r.s.mu.RUnlock()

	rows = runPlan(rows, plan, commentField)
	out := make([]*model.Comment, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, owner uuid.UUID, content string) (*model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.comments.get(id)
	if !ok || c.Owner != owner {
		return nil, repository.ErrNotFound
	}
	c.Content = content
	c.UpdatedAt = time.Now()
	r.s.comments.put(id, c)
	return &c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id, owner uuid.UUID) (*model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.comments.get(id)
	if !ok || c.Owner != owner {
		return nil, repository.ErrNotFound
	}
	r.s.comments.remove(id)
	return &c, nil
}

func commentField(c model.Comment, field string) any {
	switch field {
	case query.FieldID:
		return c.ID
	case query.FieldOwner:
		return c.Owner
	case query.FieldVideo:
		return c.Video
	case query.FieldContent:
		return c.Content
	case query.FieldCreatedAt:
		return c.CreatedAt
	case query.FieldUpdatedAt:
		return c.UpdatedAt
	}
	return nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
