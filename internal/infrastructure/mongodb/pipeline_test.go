package mongodb

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hszk-dev/mediahub/internal/domain/query"
)

func TestToPipeline_FeedPlan(t *testing.T) {
	owner := uuid.New()
	plan := query.VideoFeed.Build(query.FeedParams{
		Page:          query.NewPage(2, 5, query.DefaultLimits()),
		Query:         "cat",
		SortField:     query.FieldTitle,
		SortDirection: "desc",
		Owner:         owner,
	})

	got, err := toPipeline(plan)
	require.NoError(t, err)

	want := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "$and", Value: bson.A{
			bson.D{{Key: "$or", Value: bson.A{
				bson.D{{Key: "title", Value: primitive.Regex{Pattern: "cat", Options: "i"}}},
				bson.D{{Key: "description", Value: primitive.Regex{Pattern: "cat", Options: "i"}}},
			}}},
			bson.D{{Key: "owner", Value: owner.String()}},
		}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "title", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$skip", Value: int64(5)}},
		{{Key: "$limit", Value: int64(5)}},
	}
	assert.Equal(t, want, got)
}

func TestToPipeline_FirstPageHasNoSkip(t *testing.T) {
	plan := query.CommentFeed.Build(query.FeedParams{Page: query.NewPage(1, 10, query.DefaultLimits())})

	got, err := toPipeline(plan)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "$sort", got[0][0].Key)
	assert.Equal(t, "$limit", got[1][0].Key)
}

func TestToFilter_EscapesSearchText(t *testing.T) {
	f, err := toFilter(query.ContainsFold{Field: query.FieldTitle, Text: "a.b*(c)"})
	require.NoError(t, err)

	re, ok := f[0].Value.(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `a\.b\*\(c\)`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestToFilter_MapsIDField(t *testing.T) {
	id := uuid.New()
	f, err := toFilter(query.Eq{Field: query.FieldID, Value: id})
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "_id", Value: id.String()}}, f)
}

func TestToFilter_KeepsScalarValues(t *testing.T) {
	f, err := toFilter(query.Eq{Field: query.FieldIsPublished, Value: true})
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "isPublished", Value: true}}, f)
}
