package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/query"
)

// VideoRepository defines the interface for video persistence operations.
type VideoRepository interface {
	// Create persists a new video.
	Create(ctx context.Context, video *model.Video) error

	// GetByID returns ErrNotFound if the video does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)

	// Find runs a plan built by query.VideoFeed.
	// Returns an empty slice when nothing matches.
	Find(ctx context.Context, plan query.Plan) ([]*model.Video, error)

	// Update applies the supplied fields of patch to the video with the given
	// id and owner and returns the updated record.
	// Returns ErrNotFound if no video matches both id and owner.
	Update(ctx context.Context, id, owner uuid.UUID, patch model.VideoPatch) (*model.Video, error)

	// Delete removes the video with the given id and owner in one step and
	// returns its prior state. Returns ErrNotFound if nothing matched.
	Delete(ctx context.Context, id, owner uuid.UUID) (*model.Video, error)
}
