package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/model"
)

// PlaylistRepository defines the interface for playlist persistence operations.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *model.Playlist) error

	// GetByID returns ErrNotFound if the playlist does not exist.
	// Videos are returned as stored, including dangling references.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error)

	// ListByOwner returns the playlists of a user, oldest first.
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Playlist, error)

	// Update applies the supplied fields of patch. Returns ErrNotFound if no
	// playlist matches both id and owner.
	Update(ctx context.Context, id, owner uuid.UUID, patch model.PlaylistPatch) (*model.Playlist, error)

	// PushVideo atomically appends videoID to the playlist, duplicates allowed.
	PushVideo(ctx context.Context, id, owner, videoID uuid.UUID) (*model.Playlist, error)

	// PullVideo atomically removes every occurrence of videoID.
	PullVideo(ctx context.Context, id, owner, videoID uuid.UUID) (*model.Playlist, error)

	// Delete removes the playlist with the given id and owner and returns its
	// prior state. Returns ErrNotFound if nothing matched.
	Delete(ctx context.Context, id, owner uuid.UUID) (*model.Playlist, error)
}
