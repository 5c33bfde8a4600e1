package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/apperr"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

var errEmptyAssetURL = errors.New("asset store returned an empty URL")

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

// invalid turns a model validation error into a validation failure.
// The model error stays reachable through errors.Is.
func invalid(err error) error {
	return &apperr.Error{Kind: apperr.KindValidation, Message: err.Error(), Err: err}
}

// translate maps repository errors onto typed failures. entity names the
// record in the not-found message.
func translate(err error, entity string) error {
	if err == nil {
		return nil
	}

	var appErr *apperr.Error
	switch {
	case errors.As(err, &appErr):
		return err
	case isNotFound(err):
		return apperr.NotFound(entity + " not found")
	case errors.Is(err, repository.ErrDuplicate):
		return apperr.Conflict(entity + " already exists")
	default:
		return apperr.Store(err)
	}
}

type owned interface {
	IsOwnedBy(userID uuid.UUID) bool
}

type getFunc[T owned] func(ctx context.Context, id uuid.UUID) (T, error)

// loadOwned fetches a record and checks that actor owns it.
func loadOwned[T owned](ctx context.Context, get getFunc[T], id, actor uuid.UUID, entity string) (T, error) {
	rec, err := get(ctx, id)
	if err != nil {
		var zero T
		return zero, translate(err, entity)
	}
	if !rec.IsOwnedBy(actor) {
		var zero T
		return zero, apperr.Forbidden("only the owner can modify this " + entity)
	}
	return rec, nil
}

// explainMiss classifies an owner-conditional write that matched nothing.
func explainMiss[T owned](ctx context.Context, get getFunc[T], id, actor uuid.UUID, entity string) error {
	if _, err := loadOwned(ctx, get, id, actor, entity); err != nil {
		return err
	}
	// Present and owned, so it changed between the two calls.
	return apperr.Conflict(entity + " changed concurrently")
}
