package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/model"
)

// TweetRepository defines the interface for tweet persistence operations.
type TweetRepository interface {
	Create(ctx context.Context, tweet *model.Tweet) error

	// GetByID returns ErrNotFound if the tweet does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error)

	// ListByOwner returns the tweets of a user, newest first.
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Tweet, error)

	// UpdateContent replaces the content of the tweet with the given id and
	// owner. Returns ErrNotFound if nothing matched.
	UpdateContent(ctx context.Context, id, owner uuid.UUID, content string) (*model.Tweet, error)

	// Delete removes the tweet with the given id and owner and returns its
	// prior state. Returns ErrNotFound if nothing matched.
	Delete(ctx context.Context, id, owner uuid.UUID) (*model.Tweet, error)
}
