package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/hszk-dev/mediahub/internal/infrastructure/metrics"
)

func TestQueryType(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{"SELECT id FROM videos", metrics.DBQuerySelect},
		{"\n\t  insert into tweets (id) values ($1)", metrics.DBQueryInsert},
		{"UPDATE playlists SET name = $1", metrics.DBQueryUpdate},
		{"DELETE FROM comments WHERE id = $1", metrics.DBQueryDelete},
		{"WITH x AS (SELECT 1) SELECT * FROM x", metrics.DBQueryOther},
		{"", metrics.DBQueryOther},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.sql, func(t *testing.T) {
			if got := queryType(tt.sql); got != tt.want {
				t.Errorf("queryType(%q) = %q, want %q", tt.sql, got, tt.want)
			}
		})
	}
}

func TestQueryTracer_CountsQueries(t *testing.T) {
	tracer := queryTracer{}
	success := metrics.StoreOperationsTotal.WithLabelValues(metrics.StorePostgres, metrics.DBQueryDelete, metrics.StoreStatusSuccess)
	failed := metrics.StoreOperationsTotal.WithLabelValues(metrics.StorePostgres, metrics.DBQueryDelete, metrics.StoreStatusError)
	beforeSuccess := testutil.ToFloat64(success)
	beforeFailed := testutil.ToFloat64(failed)

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "DELETE FROM videos"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: pgx.ErrNoRows})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("connection reset")})

	if got := testutil.ToFloat64(success) - beforeSuccess; got != 1 {
		t.Errorf("success delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(failed) - beforeFailed; got != 1 {
		t.Errorf("error delta = %v, want 1", got)
	}
}
