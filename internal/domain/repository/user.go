package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/model"
)

// UserRepository reads the users provisioned by the authentication subsystem.
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicate if the ID is taken.
	Create(ctx context.Context, user *model.User) error

	// GetByID returns ErrNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
