package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

// TweetRepository implements repository.TweetRepository on MongoDB.
type TweetRepository struct {
	tweets collection[tweetDoc]
}

func NewTweetRepository(db *mongo.Database) *TweetRepository {
	return &TweetRepository{tweets: newCollection[tweetDoc](db, CollTweets)}
}

func (r *TweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	return r.tweets.insertOne(ctx, newTweetDoc(tweet))
}

func (r *TweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	doc, err := r.tweets.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

// ListByOwner returns the tweets of owner, newest first.
func (r *TweetRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Tweet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	docs, err := r.tweets.find(ctx, bson.D{{Key: "owner", Value: owner.String()}}, opts)
	if err != nil {
		return nil, err
	}

	tweets := make([]*model.Tweet, 0, len(docs))
	for _, d := range docs {
		t, err := d.toModel()
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}
	return tweets, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id, owner uuid.UUID, content string) (*model.Tweet, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: time.Now()},
	}}}
	doc, err := r.tweets.findOneAndUpdate(ctx, ownedBy(id, owner), update)
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

func (r *TweetRepository) Delete(ctx context.Context, id, owner uuid.UUID) (*model.Tweet, error) {
	doc, err := r.tweets.findOneAndDelete(ctx, ownedBy(id, owner))
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

var _ repository.TweetRepository = (*TweetRepository)(nil)
