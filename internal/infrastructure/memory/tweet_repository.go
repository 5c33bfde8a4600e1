package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

// TweetRepository implements repository.TweetRepository in memory.
type TweetRepository struct {
	s *Store
}

func NewTweetRepository(s *Store) *TweetRepository {
	return &TweetRepository{s: s}
}

func (r *TweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.tweets.insert(tweet.ID, *tweet) {
		return repository.ErrDuplicate
	}
	return nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tweets.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Tweet, error) {
	r.s.mu.RLock()
	rows := r.s.tweets.ordered()
	r.s.mu.RUnlock()

	slices.Reverse(rows)
	out := make([]*model.Tweet, 0)
	for i := range rows {
		if rows[i].Owner == owner {
			out = append(out, &rows[i])
		}
	}
	return out, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id, owner uuid.UUID, content string) (*model.Tweet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tweets.get(id)
	if !ok || t.Owner != owner {
		return nil, repository.ErrNotFound
	}
	t.Content = content
	t.UpdatedAt = time.Now()
	r.s.tweets.put(id, t)
	return &t, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id, owner uuid.UUID) (*model.Tweet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tweets.get(id)
	if !ok || t.Owner != owner {
		return nil, repository.ErrNotFound
	}
	r.s.tweets.remove(id)
	return &t, nil
}

var _ repository.TweetRepository = (*TweetRepository)(nil)
