package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

// SubscriptionRepository implements repository.SubscriptionRepository in memory.
type SubscriptionRepository struct {
	s *Store
}

func NewSubscriptionRepository(s *Store) *SubscriptionRepository {
	return &SubscriptionRepository{s: s}
}

func (r *SubscriptionRepository) CreateIfAbsent(ctx context.Context, sub *model.Subscription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := pairKey{subscriber: sub.Subscriber, channel: sub.Channel}
	if _, exists := r.s.pairs[key]; exists {
		return repository.ErrDuplicate
	}
	if !r.s.subscriptions.insert(sub.ID, *sub) {
		return repository.ErrDuplicate
	}
	r.s.pairs[key] = sub.ID
	return nil
}

func (r *SubscriptionRepository) DeleteByPair(ctx context.Context, subscriber, channel uuid.UUID) (*model.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := pairKey{subscriber: subscriber, channel: channel}
	id, ok := r.s.pairs[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.s.pairs, key)

	sub, ok := r.s.subscriptions.remove(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &sub, nil
}

func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channel uuid.UUID) ([]model.SubscriberView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.SubscriberView, 0)
	for _, sub := range r.s.subscriptions.ordered() {
		if sub.Channel != channel {
			continue
		}
		u, ok := r.s.users.get(sub.Subscriber)
		if !ok {
			continue
		}
		out = append(out, model.SubscriberView{ID: u.ID, Username: u.Username, Email: u.Email})
	}
	return out, nil
}

func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriber uuid.UUID) ([]model.ChannelView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.ChannelView, 0)
	for _, sub := range r.s.subscriptions.ordered() {
		if sub.Subscriber != subscriber {
			continue
		}
		u, ok := r.s.users.get(sub.Channel)
		if !ok {
			continue
		}
		out = append(out, model.ChannelView{ID: u.ID, Username: u.Username, FullName: u.FullName})
	}
	return out, nil
}

var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
