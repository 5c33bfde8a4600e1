package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hszk-dev/mediahub/internal/infrastructure/metrics"
)

type queryTypeKey struct{}

// queryTracer counts queries by statement type in StoreOperationsTotal.
type queryTracer struct{}

var _ pgx.QueryTracer = queryTracer{}

func (queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryTypeKey{}, queryType(data.SQL))
}

func (queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	qt, ok := ctx.Value(queryTypeKey{}).(string)
	if !ok {
		qt = metrics.DBQueryOther
	}
	status := metrics.StoreStatusSuccess
	if data.Err != nil && data.Err != pgx.ErrNoRows {
		status = metrics.StoreStatusError
	}
	metrics.StoreOperationsTotal.WithLabelValues(metrics.StorePostgres, qt, status).Inc()
}

// queryType classifies a statement by its leading keyword. WITH queries
// are counted as other.
func queryType(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return metrics.DBQueryOther
	}
	switch strings.ToLower(fields[0]) {
	case "select":
		return metrics.DBQuerySelect
	case "insert":
		return metrics.DBQueryInsert
	case "update":
		return metrics.DBQueryUpdate
	case "delete":
		return metrics.DBQueryDelete
	default:
		return metrics.DBQueryOther
	}
}
