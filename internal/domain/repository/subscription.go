package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/model"
)

// SubscriptionRepository stores subscription edges and resolves the
// subscriber graph. Implementations must enforce uniqueness of the
// (subscriber, channel) pair at the storage level.
type SubscriptionRepository interface {
	// CreateIfAbsent inserts the edge only if no edge exists for its pair.
	// Returns ErrDuplicate if one already exists.
	CreateIfAbsent(ctx context.Context, sub *model.Subscription) error

	// DeleteByPair removes the edge for the pair in one step and returns it.
	// Returns ErrNotFound if there is no such edge.
	DeleteByPair(ctx context.Context, subscriber, channel uuid.UUID) (*model.Subscription, error)

	// ListSubscribers joins the edges of a channel to their subscriber users.
	// Edges whose user no longer exists are skipped.
	ListSubscribers(ctx context.Context, channel uuid.UUID) ([]model.SubscriberView, error)

	// ListSubscribedChannels joins the edges of a subscriber to their channel users.
	ListSubscribedChannels(ctx context.Context, subscriber uuid.UUID) ([]model.ChannelView, error)
}
