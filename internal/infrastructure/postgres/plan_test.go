package postgres

import (
	"testing"

	"github.com/google/uuid"

	"github.com/hszk-dev/mediahub/internal/domain/query"
)

func TestSelectBuilder_Build(t *testing.T) {
	owner := uuid.New()
	videoID := uuid.New()

	tests := []struct {
		name     string
		builder  selectBuilder
		plan     query.Plan
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "first page without filter",
			builder: commentSelect,
			plan:    query.CommentFeed.Build(query.FeedParams{Page: query.NewPage(1, 10, query.DefaultLimits())}),
			wantSQL: "SELECT " + commentColumns + " FROM comments ORDER BY created_at ASC, id ASC LIMIT $1",
			wantArgs: []any{10},
		},
		{
			name:    "scoped comment page",
			builder: commentSelect,
			plan: query.CommentFeed.Build(query.FeedParams{
				Page:  query.NewPage(3, 5, query.DefaultLimits()),
				Scope: []query.Eq{{Field: query.FieldVideo, Value: videoID}},
			}),
			wantSQL:  "SELECT " + commentColumns + " FROM comments WHERE video_id = $1 ORDER BY created_at ASC, id ASC LIMIT $2 OFFSET $3",
			wantArgs: []any{videoID, 5, 10},
		},
		{
			name:    "search with owner sorted by title",
			builder: videoSelect,
			plan: query.VideoFeed.Build(query.FeedParams{
				Page:          query.NewPage(2, 5, query.DefaultLimits()),
				Query:         "50%_off",
				SortField:     query.FieldTitle,
				SortDirection: "desc",
				Owner:         owner,
			}),
			wantSQL: "SELECT " + videoColumns + " FROM videos" +
				` WHERE ((title ILIKE $1 ESCAPE '\' OR description ILIKE $2 ESCAPE '\') AND owner_id = $3)` +
				" ORDER BY title DESC, id ASC LIMIT $4 OFFSET $5",
			wantArgs: []any{`%50\%\_off%`, `%50\%\_off%`, owner, 5, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.builder.build(tt.plan)
			if err != nil {
				t.Fatalf("build() error = %v", err)
			}
			if sql != tt.wantSQL {
				t.Errorf("build() sql =\n%s\nwant\n%s", sql, tt.wantSQL)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("build() args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("arg %d = %v, want %v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestSelectBuilder_RejectsUnknownField(t *testing.T) {
	plan := query.Plan{Stages: []query.Stage{query.SortStage{Field: "password"}}}

	if _, _, err := videoSelect.build(plan); err == nil {
		t.Fatal("expected error for a field outside the column allow-list")
	}
}
