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

// VideoRepository implements repository.VideoRepository on MongoDB.
type VideoRepository struct {
	videos collection[videoDoc]
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{videos: newCollection[videoDoc](db, CollVideos)}
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	return r.videos.insertOne(ctx, newVideoDoc(video))
}

func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	doc, err := r.videos.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

// Find runs plan as an aggregation pipeline.
func (r *VideoRepository) Find(ctx context.Context, plan query.Plan) ([]*model.Video, error) {
	pipeline, err := toPipeline(plan)
	if err != nil {
		return nil, err
	}
	docs, err := aggregate[videoDoc](ctx, r.videos.c, pipeline)
	if err != nil {
		return nil, err
	}

	videos := make([]*model.Video, 0, len(docs))
	for _, d := range docs {
		v, err := d.toModel()
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, nil
}

// Update sets the supplied fields on the video only if owner owns it.
func (r *VideoRepository) Update(ctx context.Context, id, owner uuid.UUID, patch model.VideoPatch) (*model.Video, error) {
	set := bson.D{{Key: "updatedAt", Value: time.Now()}}
	if patch.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *patch.Description})
	}
	if patch.Duration != nil {
		set = append(set, bson.E{Key: "duration", Value: *patch.Duration})
	}
	if patch.Thumbnail != nil {
		set = append(set, bson.E{Key: "thumbnail", Value: *patch.Thumbnail})
	}
	if patch.IsPublished != nil {
		set = append(set, bson.E{Key: "isPublished", Value: *patch.IsPublished})
	}

	doc, err := r.videos.findOneAndUpdate(ctx, ownedBy(id, owner), bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

func (r *VideoRepository) Delete(ctx context.Context, id, owner uuid.UUID) (*model.Video, error) {
	doc, err := r.videos.findOneAndDelete(ctx, ownedBy(id, owner))
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

func ownedBy(id, owner uuid.UUID) bson.D {
	return bson.D{{Key: "_id", Value: id.String()}, {Key: "owner", Value: owner.String()}}
}

var _ repository.VideoRepository = (*VideoRepository)(nil)
