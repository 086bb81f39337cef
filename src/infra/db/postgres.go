package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"staffrecords/src/infra/config"
)

// DBTX is the storage surface the repositories use. *pgx.Conn, pgx.Tx and
// pgxmock all satisfy it.
//
//   - Exec runs a statement without results.
//   - QueryRow fetches at most one row; a missing row scans as pgx.ErrNoRows.
//   - Query fetches every row.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ DBTX = (*pgx.Conn)(nil)

// Postgres wraps a single pgx connection.
type Postgres struct {
	Conn *pgx.Conn
	log  *slog.Logger
}

// New opens a connection and verifies it with a ping.
func New(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Postgres, error) {
	connCfg, err := pgx.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	connCfg.ConnectTimeout = cfg.ConnectTimeout
	connCfg.Tracer = newQueryTracer(log, cfg.SlowQuery)

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Debug("database connection established",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Name,
	)

	return &Postgres{
		Conn: conn,
		log:  log,
	}, nil
}

// Close closes the connection.
func (p *Postgres) Close(ctx context.Context) {
	if p.Conn != nil {
		if err := p.Conn.Close(ctx); err != nil {
			p.log.Warn("failed to close database connection", "error", err)
			return
		}
		p.log.Debug("database connection closed")
	}
}

// Health checks if the database is reachable.
func (p *Postgres) Health(ctx context.Context) error {
	return p.Conn.Ping(ctx)
}
