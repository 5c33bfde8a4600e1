package query

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	limits := DefaultLimits()

	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
		wantSkip  int
	}{
		{"defaults when absent", "", "", 1, 10, 0},
		{"defaults when non-numeric", "abc", "xyz", 1, 10, 0},
		{"plain integers", "3", "5", 3, 5, 10},
		{"fraction truncated", "2.9", "4.2", 2, 4, 4},
		{"zero page clamped", "0", "5", 1, 5, 0},
		{"negative page clamped", "-4", "5", 1, 5, 0},
		{"zero limit clamped", "2", "0", 2, 1, 1},
		{"negative limit clamped", "2", "-10", 2, 1, 1},
		{"limit above max clamped", "1", "5000", 1, 100, 0},
		{"whitespace tolerated", " 2 ", " 10 ", 2, 10, 10},
		{"NaN falls back", "NaN", "NaN", 1, 10, 0},
		{"huge page bounded", "1e40", "10", maxPage, 10, (maxPage - 1) * 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePage(tt.page, tt.limit, limits)
			assert.Equal(t, tt.wantPage, p.Number)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantSkip, p.Offset())
		})
	}
}

func TestParsePage_NeverBelowOne(t *testing.T) {
	for _, raw := range []string{"-1", "0", "-0.5", "0.4", "-999999"} {
		p := ParsePage(raw, raw, DefaultLimits())
		assert.GreaterOrEqual(t, p.Number, 1, "page for %q", raw)
		assert.GreaterOrEqual(t, p.Limit, 1, "limit for %q", raw)
		assert.GreaterOrEqual(t, p.Offset(), 0, "offset for %q", raw)
	}
}

func TestBuilder_Build_NoFilterStageWithoutPredicate(t *testing.T) {
	plan := VideoFeed.Build(FeedParams{Page: NewPage(1, 10, DefaultLimits())})

	require.Len(t, plan.Stages, 3)
	assert.IsType(t, SortStage{}, plan.Stages[0])
	assert.Equal(t, SkipStage{N: 0}, plan.Stages[1])
	assert.Equal(t, TakeStage{N: 10}, plan.Stages[2])

	_, ok := plan.Filter()
	assert.False(t, ok, "an empty filter stage must not be emitted")
}

func TestBuilder_Build_StageOrder(t *testing.T) {
	owner := uuid.New()
	plan := VideoFeed.Build(FeedParams{
		Page:          NewPage(2, 5, DefaultLimits()),
		Query:         "cat",
		SortField:     FieldTitle,
		SortDirection: "desc",
		Owner:         owner,
	})

	require.Len(t, plan.Stages, 4)
	assert.IsType(t, FilterStage{}, plan.Stages[0])
	assert.Equal(t, SortStage{Field: FieldTitle, Desc: true}, plan.Stages[1])
	assert.Equal(t, SkipStage{N: 5}, plan.Stages[2])
	assert.Equal(t, TakeStage{N: 5}, plan.Stages[3])

	pred, ok := plan.Filter()
	require.True(t, ok)
	assert.Equal(t, And{
		Or{
			ContainsFold{Field: FieldTitle, Text: "cat"},
			ContainsFold{Field: FieldDescription, Text: "cat"},
		},
		Eq{Field: FieldOwner, Value: owner},
	}, pred)
}

func TestBuilder_Build_QueryOnly(t *testing.T) {
	plan := VideoFeed.Build(FeedParams{Page: NewPage(1, 10, DefaultLimits()), Query: "  dog "})

	pred, ok := plan.Filter()
	require.True(t, ok)
	assert.Equal(t, Or{
		ContainsFold{Field: FieldTitle, Text: "dog"},
		ContainsFold{Field: FieldDescription, Text: "dog"},
	}, pred)
}

func TestBuilder_Build_SortFallback(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		direction string
		want      SortStage
	}{
		{"absent field", "", "", SortStage{Field: FieldCreatedAt}},
		{"unknown field", "password", "desc", SortStage{Field: FieldCreatedAt, Desc: true}},
		{"allowed field ascending", FieldDuration, "asc", SortStage{Field: FieldDuration}},
		{"anything but desc is ascending", FieldTitle, "DESC", SortStage{Field: FieldTitle}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := VideoFeed.Build(FeedParams{
				Page:          NewPage(1, 10, DefaultLimits()),
				SortField:     tt.field,
				SortDirection: tt.direction,
			})
			got, ok := plan.Sort()
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuilder_Build_ClampsUnvalidatedPage(t *testing.T) {
	plan := CommentFeed.Build(FeedParams{Page: Page{Number: 0, Limit: -3}})

	assert.Equal(t, 0, plan.Skip())
	assert.Equal(t, 1, plan.Take())
}

func TestBuilder_Build_ScopeWithoutSearchFields(t *testing.T) {
	videoID := uuid.New()
	plan := CommentFeed.Build(FeedParams{
		Page:  NewPage(1, 10, DefaultLimits()),
		Query: "ignored",
		Scope: []Eq{{Field: FieldVideo, Value: videoID}},
	})

	pred, ok := plan.Filter()
	require.True(t, ok)
	assert.Equal(t, Eq{Field: FieldVideo, Value: videoID}, pred)
}
