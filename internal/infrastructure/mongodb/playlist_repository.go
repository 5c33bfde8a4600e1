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

// PlaylistRepository implements repository.PlaylistRepository on MongoDB.
// Video membership changes use $push and $pull so concurrent edits of the
// same playlist never overwrite each other.
type PlaylistRepository struct {
	playlists collection[playlistDoc]
}

func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{playlists: newCollection[playlistDoc](db, CollPlaylists)}
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	return r.playlists.insertOne(ctx, newPlaylistDoc(playlist))
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	doc, err := r.playlists.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

// ListByOwner returns the playlists of owner, oldest first.
func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Playlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	docs, err := r.playlists.find(ctx, bson.D{{Key: "owner", Value: owner.String()}}, opts)
	if err != nil {
		return nil, err
	}

	playlists := make([]*model.Playlist, 0, len(docs))
	for _, d := range docs {
		p, err := d.toModel()
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, id, owner uuid.UUID, patch model.PlaylistPatch) (*model.Playlist, error) {
	set := bson.D{{Key: "updatedAt", Value: time.Now()}}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *patch.Description})
	}
	return r.update(ctx, id, owner, bson.D{{Key: "$set", Value: set}})
}

func (r *PlaylistRepository) PushVideo(ctx context.Context, id, owner, videoID uuid.UUID) (*model.Playlist, error) {
	return r.update(ctx, id, owner, bson.D{
		{Key: "$push", Value: bson.D{{Key: "videos", Value: videoID.String()}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now()}}},
	})
}

// PullVideo removes every occurrence of videoID.
func (r *PlaylistRepository) PullVideo(ctx context.Context, id, owner, videoID uuid.UUID) (*model.Playlist, error) {
	return r.update(ctx, id, owner, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID.String()}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now()}}},
	})
}

func (r *PlaylistRepository) Delete(ctx context.Context, id, owner uuid.UUID) (*model.Playlist, error) {
	doc, err := r.playlists.findOneAndDelete(ctx, ownedBy(id, owner))
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

func (r *PlaylistRepository) update(ctx context.Context, id, owner uuid.UUID, update bson.D) (*model.Playlist, error) {
	doc, err := r.playlists.findOneAndUpdate(ctx, ownedBy(id, owner), update)
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

var _ repository.PlaylistRepository = (*PlaylistRepository)(nil)
