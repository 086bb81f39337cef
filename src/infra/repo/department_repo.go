package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"staffrecords/src/core/domain"
	"staffrecords/src/core/identity"
	"staffrecords/src/core/ports"
	"staffrecords/src/infra/db"
	"staffrecords/src/infra/logger"
)

var _ ports.DepartmentRepository = (*DepartmentRepository)(nil)

// DepartmentRepository implements ports.DepartmentRepository using pgx.
type DepartmentRepository struct {
	db    db.DBTX
	cache *identity.Map[*domain.Department]
	log   *slog.Logger
}

// NewDepartmentRepository constructs a repository backed by Postgres.
// A nil cache gets a fresh identity map.
func NewDepartmentRepository(conn db.DBTX, cache *identity.Map[*domain.Department], log *slog.Logger) *DepartmentRepository {
	if cache == nil {
		cache = identity.New[*domain.Department]()
	}
	return &DepartmentRepository{
		db:    conn,
		cache: cache,
		log:   logger.WithComponent(log, "departments"),
	}
}

func (r *DepartmentRepository) CreateTable(ctx context.Context) error {
	const q = `
		CREATE TABLE IF NOT EXISTS departments (
			id BIGSERIAL PRIMARY KEY,
			name TEXT
		)
	`
	if _, err := r.db.Exec(ctx, q); err != nil {
		return fmt.Errorf("create departments table: %w", err)
	}
	return nil
}

func (r *DepartmentRepository) DropTable(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DROP TABLE IF EXISTS departments`); err != nil {
		return fmt.Errorf("drop departments table: %w", err)
	}
	r.cache.Clear()
	return nil
}

func (r *DepartmentRepository) Create(ctx context.Context, name string) (*domain.Department, error) {
	d, err := domain.NewDepartment(name)
	if err != nil {
		return nil, err
	}
	return r.Save(ctx, d)
}

func (r *DepartmentRepository) Save(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	if d.IsPersisted() {
		return r.Update(ctx, d)
	}
	const q = `
		INSERT INTO departments (name)
		VALUES ($1)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(ctx, q, d.Name()).Scan(&id); err != nil {
		return nil, mapWriteError("insert department", err)
	}
	d.MarkPersisted(id)
	r.cache.Put(id, d)
	logger.Debug(r.log, "department inserted", "id", id)
	return d, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	if !d.IsPersisted() {
		return nil, domain.NewStateError("cannot update a department that has not been saved")
	}
	res, err := r.db.Exec(ctx, `UPDATE departments SET name = $2 WHERE id = $1`, d.ID(), d.Name())
	if err != nil {
		return nil, mapWriteError("update department", err)
	}
	if res.RowsAffected() == 0 {
		return nil, domain.NewNotFoundError("department")
	}
	r.cache.Put(d.ID(), d)
	logger.Debug(r.log, "department updated", "id", d.ID())
	return d, nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, d *domain.Department) error {
	if !d.IsPersisted() {
		return nil
	}
	id := d.ID()
	if _, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id); err != nil {
		return mapWriteError("delete department", err)
	}
	r.cache.Evict(id)
	d.MarkDeleted()
	logger.Debug(r.log, "department deleted", "id", id)
	return nil
}

func (r *DepartmentRepository) FromRecord(rec *domain.DepartmentRecord) *domain.Department {
	if rec == nil {
		return nil
	}
	if d, ok := r.cache.Get(rec.ID); ok {
		d.Refresh(*rec)
		return d
	}
	d := domain.RestoreDepartment(*rec)
	r.cache.Put(rec.ID, d)
	return d
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id int64) (*domain.Department, error) {
	rec, err := r.scanOne(r.db.QueryRow(ctx, `SELECT id, name FROM departments WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("find department %d: %w", id, err)
	}
	return r.FromRecord(rec), nil
}

func (r *DepartmentRepository) FindByName(ctx context.Context, name string) (*domain.Department, error) {
	rec, err := r.scanOne(r.db.QueryRow(ctx, `SELECT id, name FROM departments WHERE name = $1 LIMIT 1`, name))
	if err != nil {
		return nil, fmt.Errorf("find department %q: %w", name, err)
	}
	return r.FromRecord(rec), nil
}

// Exists reports whether department id is persisted.
func (r *DepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	d, err := r.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return d != nil, nil
}

func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*domain.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM departments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	departments := []*domain.Department{}
	for rows.Next() {
		var rec domain.DepartmentRecord
		if err := rows.Scan(&rec.ID, &rec.Name); err != nil {
			return nil, fmt.Errorf("list departments: %w", err)
		}
		departments = append(departments, r.FromRecord(&rec))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

func (r *DepartmentRepository) scanOne(row pgx.Row) (*domain.DepartmentRecord, error) {
	var rec domain.DepartmentRecord
	if err := row.Scan(&rec.ID, &rec.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
