package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

// collection is a typed wrapper over a mongo collection of documents D.
type collection[D any] struct {
	c *mongo.Collection
}

func newCollection[D any](db *mongo.Database, name string) collection[D] {
	return collection[D]{c: db.Collection(name)}
}

func (c collection[D]) insertOne(ctx context.Context, doc D) error {
	if _, err := c.c.InsertOne(ctx, doc); err != nil {
		return convertError(err, "insert into "+c.c.Name())
	}
	return nil
}

func (c collection[D]) findOne(ctx context.Context, filter bson.D) (D, error) {
	var doc D
	if err := c.c.FindOne(ctx, filter).Decode(&doc); err != nil {
		return doc, convertError(err, "find in "+c.c.Name())
	}
	return doc, nil
}

func (c collection[D]) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]D, error) {
	cur, err := c.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, convertError(err, "find in "+c.c.Name())
	}
	docs := make([]D, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, convertError(err, "decode "+c.c.Name())
	}
	return docs, nil
}

func aggregate[R any](ctx context.Context, c *mongo.Collection, pipeline mongo.Pipeline) ([]R, error) {
	cur, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, convertError(err, "aggregate "+c.Name())
	}
	docs := make([]R, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, convertError(err, "decode "+c.Name())
	}
	return docs, nil
}

// findOneAndUpdate applies update to the first document matching filter and
// returns the document as it is after the update.
func (c collection[D]) findOneAndUpdate(ctx context.Context, filter, update bson.D) (D, error) {
	var doc D
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := c.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return doc, convertError(err, "update in "+c.c.Name())
	}
	return doc, nil
}

func (c collection[D]) findOneAndDelete(ctx context.Context, filter bson.D) (D, error) {
	var doc D
	if err := c.c.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		return doc, convertError(err, "delete from "+c.c.Name())
	}
	return doc, nil
}

func convertError(err error, op string) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
