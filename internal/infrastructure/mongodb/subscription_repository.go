package mongodb

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

// SubscriptionRepository implements repository.SubscriptionRepository on
// MongoDB. Pair uniqueness comes from the subscription_pair index created by
// EnsureIndexes.
type SubscriptionRepository struct {
	subscriptions collection[subscriptionDoc]
}

func NewSubscriptionRepository(db *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{subscriptions: newCollection[subscriptionDoc](db, CollSubscriptions)}
}

func (r *SubscriptionRepository) CreateIfAbsent(ctx context.Context, sub *model.Subscription) error {
	return r.subscriptions.insertOne(ctx, newSubscriptionDoc(sub))
}

func (r *SubscriptionRepository) DeleteByPair(ctx context.Context, subscriber, channel uuid.UUID) (*model.Subscription, error) {
	doc, err := r.subscriptions.findOneAndDelete(ctx, bson.D{
		{Key: "subscriber", Value: subscriber.String()},
		{Key: "channel", Value: channel.String()},
	})
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

// ListSubscribers joins the subscriptions of channel with the users
// collection. Edges whose user no longer exists are dropped by $unwind.
func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channel uuid.UUID) ([]model.SubscriberView, error) {
	docs, err := aggregate[userViewDoc](ctx, r.subscriptions.c, joinUsers("channel", channel, "subscriber"))
	if err != nil {
		return nil, err
	}

	views := make([]model.SubscriberView, 0, len(docs))
	for _, d := range docs {
		id, err := uuid.Parse(d.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, model.SubscriberView{ID: id, Username: d.Username, Email: d.Email})
	}
	return views, nil
}

func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriber uuid.UUID) ([]model.ChannelView, error) {
	docs, err := aggregate[userViewDoc](ctx, r.subscriptions.c, joinUsers("subscriber", subscriber, "channel"))
	if err != nil {
		return nil, err
	}

	views := make([]model.ChannelView, 0, len(docs))
	for _, d := range docs {
		id, err := uuid.Parse(d.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, model.ChannelView{ID: id, Username: d.Username, FullName: d.FullName})
	}
	return views, nil
}

// joinUsers matches edges where matchField equals id and replaces each edge
// with the user referenced by joinField.
func joinUsers(matchField string, id uuid.UUID, joinField string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: matchField, Value: id.String()}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollUsers},
			{Key: "localField", Value: joinField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$user"}}}},
	}
}

var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
