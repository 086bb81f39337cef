package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

// queryTracer implements pgx.QueryTracer: every statement at debug,
// statements slower than the threshold at warn.
type queryTracer struct {
	log  *slog.Logger
	slow time.Duration
}

type queryStartKey struct{}
type querySQLKey struct{}

func newQueryTracer(log *slog.Logger, slow time.Duration) *queryTracer {
	return &queryTracer{log: log, slow: slow}
}

func (t *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	ctx = context.WithValue(ctx, queryStartKey{}, time.Now())
	ctx = context.WithValue(ctx, querySQLKey{}, data.SQL)
	return ctx
}

func (t *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(time.Time)
	if !ok {
		return
	}
	sql, _ := ctx.Value(querySQLKey{}).(string)
	duration := time.Since(start)

	attrs := []any{
		"duration_ms", duration.Milliseconds(),
		"sql", truncateSQL(compactSQL(sql), 200),
		"command", data.CommandTag.String(),
	}
	if data.Err != nil {
		attrs = append(attrs, "error", data.Err)
	}

	if t.slow > 0 && duration > t.slow {
		t.log.Warn("slow query detected", attrs...)
		return
	}
	t.log.Debug("query executed", attrs...)
}

// compactSQL folds the indentation of multi-line statements into single spaces.
func compactSQL(sql string) string {
	out := make([]byte, 0, len(sql))
	space := false
	for i := 0; i < len(sql); i++ {
		c := sql[i]
		if c == ' ' || c == '\n' || c == '\t' || c == '\r' {
			space = len(out) > 0
			continue
		}
		if space {
			out = append(out, ' ')
			space = false
		}
		out = append(out, c)
	}
	return string(out)
}

func truncateSQL(sql string, maxLen int) string {
	if len(sql) <= maxLen {
		return sql
	}
	return sql[:maxLen] + "..."
}
