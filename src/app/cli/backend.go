package cli

import (
	"context"
	"log/slog"

	"staffrecords/src/core/ports"
	"staffrecords/src/core/usecase"
	"staffrecords/src/infra/config"
	"staffrecords/src/infra/db"
	"staffrecords/src/infra/repo"
)

// backend holds the services of one invocation.
type backend struct {
	schema *usecase.SchemaService
	staff  *usecase.StaffService
	health *usecase.HealthService
	close  func(ctx context.Context)
}

type opener func(ctx context.Context, cfg *config.Config, log *slog.Logger) (*backend, error)

// connect opens the PostgreSQL connection and wires repositories and
// services over it.
func connect(ctx context.Context, cfg *config.Config, log *slog.Logger) (*backend, error) {
	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	b := newBackend(pg.Conn, pg, log)
	b.close = pg.Close
	return b, nil
}

func newBackend(conn db.DBTX, checker ports.HealthChecker, log *slog.Logger) *backend {
	set := repo.NewSet(conn, log)
	return &backend{
		// parents first; drop walks the list backwards
		schema: usecase.NewSchemaService(log, set.Departments, set.Employees, set.Reviews),
		staff:  usecase.NewStaffService(set.Departments, set.Employees, set.Reviews, log),
		health: usecase.NewHealthService(checker, log),
		close:  func(context.Context) {},
	}
}
