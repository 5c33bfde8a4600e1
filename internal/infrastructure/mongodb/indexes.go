package mongodb

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. The unique
// (subscriber, channel) index is what makes CreateIfAbsent race-free.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := []struct {
		coll  string
		model mongo.IndexModel
	}{
		{CollSubscriptions, mongo.IndexModel{
			Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
			Options: options.Index().SetName("subscription_pair").SetUnique(true),
		}},
		{CollSubscriptions, mongo.IndexModel{
			Keys:    bson.D{{Key: "channel", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("subscription_channel"),
		}},
		{CollVideos, mongo.IndexModel{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("video_owner"),
		}},
		{CollComments, mongo.IndexModel{
			Keys:    bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("comment_video"),
		}},
		{CollTweets, mongo.IndexModel{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("tweet_owner"),
		}},
		{CollPlaylists, mongo.IndexModel{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("playlist_owner"),
		}},
	}

	for _, s := range specs {
		if _, err := db.Collection(s.coll).Indexes().CreateOne(ctx, s.model); err != nil && !isIndexExistsError(err) {
			return fmt.Errorf("failed to create index on %s: %w", s.coll, err)
		}
	}
	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "IndexOptionsConflict")
}
