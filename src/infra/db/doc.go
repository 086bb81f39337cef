// Package db provides the PostgreSQL connection the repositories run against.
//
// This package is responsible for:
//   - Opening a single pgx connection (no pool; callers are single-threaded)
//   - The DBTX executor interface the repositories depend on
//   - Statement tracing through slog
//
// Every statement runs in PostgreSQL auto-commit mode, so each repository
// call is its own committed unit.
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close(ctx)
package db
