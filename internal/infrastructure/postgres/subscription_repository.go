package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

const subscriptionColumns = `id, subscriber_id, channel_id, created_at, updated_at`

// SubscriptionRepository implements repository.SubscriptionRepository using
// PostgreSQL. The uq_subscriptions_pair constraint enforces one edge per pair.
type SubscriptionRepository struct {
	db DBTX
}

func NewSubscriptionRepository(db DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) CreateIfAbsent(ctx context.Context, s *model.Subscription) error {
	const q = `
		INSERT INTO subscriptions (` + subscriptionColumns + `)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (subscriber_id, channel_id) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, q, s.ID, s.Subscriber, s.Channel, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return convertError(err, "create subscription")
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrDuplicate
	}
	return nil
}

func (r *SubscriptionRepository) DeleteByPair(ctx context.Context, subscriber, channel uuid.UUID) (*model.Subscription, error) {
	const q = `
		DELETE FROM subscriptions
		WHERE subscriber_id = $1 AND channel_id = $2
		RETURNING ` + subscriptionColumns

	var s model.Subscription
	err := r.db.QueryRow(ctx, q, subscriber, channel).Scan(
		&s.ID, &s.Subscriber, &s.Channel, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, convertError(err, "delete subscription")
	}
	return &s, nil
}

func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channel uuid.UUID) ([]model.SubscriberView, error) {
	const q = `
		SELECT u.id, u.username, u.email
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at ASC, s.id ASC
	`

	rows, err := r.db.Query(ctx, q, channel)
	if err != nil {
		return nil, convertError(err, "query subscribers")
	}
	defer rows.Close()

	views := make([]model.SubscriberView, 0)
	for rows.Next() {
		var v model.SubscriberView
		if err := rows.Scan(&v.ID, &v.Username, &v.Email); err != nil {
			return nil, convertError(err, "scan subscriber")
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, convertError(err, "iterate subscribers")
	}
	return views, nil
}

func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriber uuid.UUID) ([]model.ChannelView, error) {
	const q = `
		SELECT u.id, u.username, u.full_name
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at ASC, s.id ASC
	`

	rows, err := r.db.Query(ctx, q, subscriber)
	if err != nil {
		return nil, convertError(err, "query subscribed channels")
	}
	defer rows.Close()

	views := make([]model.ChannelView, 0)
	for rows.Next() {
		var v model.ChannelView
		if err := rows.Scan(&v.ID, &v.Username, &v.FullName); err != nil {
			return nil, convertError(err, "scan channel")
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, convertError(err, "iterate channels")
	}
	return views, nil
}

var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
