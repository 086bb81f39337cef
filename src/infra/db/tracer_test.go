package db

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"staffrecords/src/infra/config"
	"staffrecords/src/infra/logger"
)

func TestTruncateSQL(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		maxLen   int
		expected string
	}{
		{name: "short SQL unchanged", sql: "SELECT 1", maxLen: 100, expected: "SELECT 1"},
		{name: "exactly at max length", sql: "SELECT 1", maxLen: 8, expected: "SELECT 1"},
		{name: "truncated with ellipsis", sql: "SELECT id FROM employees", maxLen: 9, expected: "SELECT id..."},
		{name: "empty string", sql: "", maxLen: 10, expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateSQL(tt.sql, tt.maxLen))
		})
	}
}

func TestCompactSQL(t *testing.T) {
	in := "\n\t\tSELECT id, name\n\t\tFROM employees\n\t\tWHERE id = $1\n\t"
	assert.Equal(t, "SELECT id, name FROM employees WHERE id = $1", compactSQL(in))
}

func TestQueryTracer(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(config.LogConfig{Level: "debug", Format: "text"}, &buf)
	tracer := newQueryTracer(log, time.Hour)

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "DELETE FROM reviews WHERE id = $1"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{
		CommandTag: pgconn.NewCommandTag("DELETE 1"),
		Err:        errors.New("boom"),
	})

	out := buf.String()
	assert.Contains(t, out, "query executed")
	assert.Contains(t, out, "DELETE FROM reviews")
	assert.Contains(t, out, "boom")
}

func TestQueryTracerWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(config.LogConfig{Level: "debug", Format: "text"}, &buf)

	newQueryTracer(log, 0).TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	assert.Empty(t, buf.String())
}
