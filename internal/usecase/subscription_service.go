package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hszk-dev/mediahub/internal/domain/apperr"
	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
	"github.com/hszk-dev/mediahub/internal/infrastructure/cache"
	"github.com/hszk-dev/mediahub/internal/infrastructure/metrics"
)

// ToggleResult describes the edge a toggle created or removed.
type ToggleResult struct {
	Subscription *model.Subscription
	// Subscribed is true when the toggle created the edge.
	Subscribed bool
}

// SubscriptionService toggles subscriptions and resolves the subscriber graph.
type SubscriptionService interface {
	// Toggle removes the actor's subscription to channel if it exists and
	// creates it otherwise. Losing a race against a concurrent toggle yields
	// a conflict failure; at most one edge per pair is ever stored.
	Toggle(ctx context.Context, actor, channelID uuid.UUID) (*ToggleResult, error)

	ChannelSubscribers(ctx context.Context, channelID uuid.UUID) ([]model.SubscriberView, error)
	SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]model.ChannelView, error)

	// SubscriberCount reads the event-driven counter. It trails the edges.
	SubscriberCount(ctx context.Context, channelID uuid.UUID) (int64, error)
}

// SubscriptionServiceConfig holds configuration for SubscriptionService.
type SubscriptionServiceConfig struct {
	// EmptyAsNotFound reports an empty subscriber or channel list as not found.
	EmptyAsNotFound bool
	// AllowSelfSubscription lets users subscribe to their own channel.
	AllowSelfSubscription bool
}

// DefaultSubscriptionServiceConfig returns the default configuration.
func DefaultSubscriptionServiceConfig() SubscriptionServiceConfig {
	return SubscriptionServiceConfig{
		EmptyAsNotFound:       true,
		AllowSelfSubscription: false,
	}
}

type subscriptionService struct {
	subs    repository.SubscriptionRepository
	users   repository.UserRepository
	counter cache.SubscriberCounter
	events  eventEmitter

	emptyAsNotFound       bool
	allowSelfSubscription bool
}

// NewSubscriptionService creates a new SubscriptionService instance.
// counter and publisher may be nil.
func NewSubscriptionService(
	subs repository.SubscriptionRepository,
	users repository.UserRepository,
	counter cache.SubscriberCounter,
	publisher repository.EventPublisher,
	cfg SubscriptionServiceConfig,
) SubscriptionService {
	return &subscriptionService{
		subs:                  subs,
		users:                 users,
		counter:               counter,
		events:                eventEmitter{publisher: publisher},
		emptyAsNotFound:       cfg.EmptyAsNotFound,
		allowSelfSubscription: cfg.AllowSelfSubscription,
	}
}

func (s *subscriptionService) Toggle(ctx context.Context, actor, channelID uuid.UUID) (*ToggleResult, error) {
	edge, err := model.NewSubscription(actor, channelID)
	if err != nil {
		return nil, invalid(err)
	}
	if actor == channelID && !s.allowSelfSubscription {
		return nil, invalid(model.ErrSelfSubscription)
	}

	if _, err := s.users.GetByID(ctx, channelID); err != nil {
		return nil, translate(err, "channel")
	}

	removed, err := s.subs.DeleteByPair(ctx, actor, channelID)
	switch {
	case err == nil:
		metrics.SubscriptionTogglesTotal.WithLabelValues(metrics.ToggleUnsubscribed).Inc()
		s.events.emit(ctx, repository.EventSubscriptionRemoved, actor, channelID)
		return &ToggleResult{Subscription: removed, Subscribed: false}, nil
	case !isNotFound(err):
		return nil, apperr.Store(err)
	}

	if err := s.subs.CreateIfAbsent(ctx, edge); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			metrics.SubscriptionTogglesTotal.WithLabelValues(metrics.ToggleConflict).Inc()
			return nil, apperr.Conflict("subscription changed concurrently, retry the toggle")
		}
		return nil, apperr.Store(err)
	}

	metrics.SubscriptionTogglesTotal.WithLabelValues(metrics.ToggleSubscribed).Inc()
	s.events.emit(ctx, repository.EventSubscriptionCreated, actor, channelID)
	return &ToggleResult{Subscription: edge, Subscribed: true}, nil
}

func (s *subscriptionService) ChannelSubscribers(ctx context.Context, channelID uuid.UUID) ([]model.SubscriberView, error) {
	subscribers, err := s.subs.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return emptyGraph(subscribers, s.emptyAsNotFound, "channel has no subscribers")
}

func (s *subscriptionService) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]model.ChannelView, error) {
	channels, err := s.subs.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return emptyGraph(channels, s.emptyAsNotFound, "user is not subscribed to any channel")
}

func (s *subscriptionService) SubscriberCount(ctx context.Context, channelID uuid.UUID) (int64, error) {
	if s.counter == nil {
		return 0, apperr.NotFound("subscriber counts are not available")
	}
	n, err := s.counter.Get(ctx, channelID)
	if err != nil {
		return 0, apperr.Store(err)
	}
	return n, nil
}

func emptyGraph[T any](views []T, asNotFound bool, message string) ([]T, error) {
	if len(views) > 0 {
		return views, nil
	}
	if asNotFound {
		return nil, apperr.NotFound(message)
	}
	return []T{}, nil
}
