package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/domain/query"
	"github.com/hszk-dev/mediahub/internal/domain/repository"
)

// CommentRepository implements repository.CommentRepository on MongoDB.
type CommentRepository struct {
	comments collection[commentDoc]
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{comments: newCollection[commentDoc](db, CollComments)}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.comments.insertOne(ctx, newCommentDoc(comment))
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	doc, err := r.comments.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

func (r *CommentRepository) Find(ctx context.Context, plan query.Plan) ([]*model.Comment, error) {
	pipeline, err := toPipeline(plan)
	if err != nil {
		return nil, err
	}
	docs, err := aggregate[commentDoc](ctx, r.comments.c, pipeline)
	if err != nil {
		return nil, err
	}

	comments := make([]*model.Comment, 0, len(docs))
	for _, d := range docs {
		c, err := d.toModel()
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, owner uuid.UUID, content string) (*model.Comment, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: time.Now()},
	}}}
	doc, err := r.comments.findOneAndUpdate(ctx, ownedBy(id, owner), update)
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

func (r *CommentRepository) Delete(ctx context.Context, id, owner uuid.UUID) (*model.Comment, error) {
	doc, err := r.comments.findOneAndDelete(ctx, ownedBy(id, owner))
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
