package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/query"
)

// CommentRepository defines the interface for comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error

	// GetByID returns ErrNotFound if the comment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// Find runs a plan built by query.CommentFeed.
	Find(ctx context.Context, plan query.Plan) ([]*model.Comment, error)

	// UpdateContent replaces the content of the comment with the given id and
	// owner. Returns ErrNotFound if nothing matched.
	UpdateContent(ctx context.Context, id, owner uuid.UUID, content string) (*model.Comment, error)

	// Delete removes the comment with the given id and owner and returns its
	// prior state. Returns ErrNotFound if nothing matched.
	Delete(ctx context.Context, id, owner uuid.UUID) (*model.Comment, error)
}
