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

var _ ports.EmployeeRepository = (*EmployeeRepository)(nil)

// EmployeeRepository implements ports.EmployeeRepository using pgx.
type EmployeeRepository struct {
	db          db.DBTX
	departments domain.Resolver
	cache       *identity.Map[*domain.Employee]
	log         *slog.Logger
}

// NewEmployeeRepository constructs a repository backed by Postgres.
// A nil cache gets a fresh identity map.
func NewEmployeeRepository(conn db.DBTX, departments domain.Resolver, cache *identity.Map[*domain.Employee], log *slog.Logger) *EmployeeRepository {
	if cache == nil {
		cache = identity.New[*domain.Employee]()
	}
	return &EmployeeRepository{
		db:          conn,
		departments: departments,
		cache:       cache,
		log:         logger.WithComponent(log, "employees"),
	}
}

func (r *EmployeeRepository) CreateTable(ctx context.Context) error {
	const q = `
		CREATE TABLE IF NOT EXISTS employees (
			id BIGSERIAL PRIMARY KEY,
			name TEXT,
			job_title TEXT,
			department_id BIGINT,
			FOREIGN KEY (department_id) REFERENCES departments(id)
		)
	`
	if _, err := r.db.Exec(ctx, q); err != nil {
		return fmt.Errorf("create employees table: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) DropTable(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DROP TABLE IF EXISTS employees`); err != nil {
		return fmt.Errorf("drop employees table: %w", err)
	}
	r.cache.Clear()
	return nil
}

func (r *EmployeeRepository) New(ctx context.Context, name, jobTitle string, departmentID int64) (*domain.Employee, error) {
	return domain.NewEmployee(ctx, name, jobTitle, departmentID, r.departments)
}

func (r *EmployeeRepository) Create(ctx context.Context, name, jobTitle string, departmentID int64) (*domain.Employee, error) {
	e, err := r.New(ctx, name, jobTitle, departmentID)
	if err != nil {
		return nil, err
	}
	return r.Save(ctx, e)
}

// Save inserts an unsaved employee and registers it, or updates a saved one.
func (r *EmployeeRepository) Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if e.IsPersisted() {
		return r.Update(ctx, e)
	}
	const q = `
		INSERT INTO employees (name, job_title, department_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	rec := e.Record()
	var id int64
	if err := r.db.QueryRow(ctx, q, rec.Name, rec.JobTitle, rec.DepartmentID).Scan(&id); err != nil {
		return nil, mapWriteError("insert employee", err)
	}
	e.MarkPersisted(id)
	r.cache.Put(id, e)
	logger.Debug(r.log, "employee inserted", "id", id)
	return e, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if !e.IsPersisted() {
		return nil, domain.NewStateError("cannot update an employee that has not been saved")
	}
	const q = `
		UPDATE employees
		SET name = $2, job_title = $3, department_id = $4
		WHERE id = $1
	`
	rec := e.Record()
	res, err := r.db.Exec(ctx, q, rec.ID, rec.Name, rec.JobTitle, rec.DepartmentID)
	if err != nil {
		return nil, mapWriteError("update employee", err)
	}
	if res.RowsAffected() == 0 {
		return nil, domain.NewNotFoundError("employee")
	}
	r.cache.Put(rec.ID, e)
	logger.Debug(r.log, "employee updated", "id", rec.ID)
	return e, nil
}

// Delete removes the row, evicts it and clears the id. Unsaved employees are
// left alone. Reviews that reference the employee are not touched.
func (r *EmployeeRepository) Delete(ctx context.Context, e *domain.Employee) error {
	if !e.IsPersisted() {
		return nil
	}
	id := e.ID()
	if _, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id); err != nil {
		return mapWriteError("delete employee", err)
	}
	r.cache.Evict(id)
	e.MarkDeleted()
	logger.Debug(r.log, "employee deleted", "id", id)
	return nil
}

// FromRecord returns the cached employee for rec.ID refreshed with rec's
// columns, or a new registered one. A nil rec yields nil.
func (r *EmployeeRepository) FromRecord(rec *domain.EmployeeRecord) *domain.Employee {
	if rec == nil {
		return nil
	}
	if e, ok := r.cache.Get(rec.ID); ok {
		e.Refresh(*rec)
		return e
	}
	e := domain.RestoreEmployee(*rec, r.departments)
	r.cache.Put(rec.ID, e)
	return e
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	const q = `
		SELECT id, name, job_title, department_id
		FROM employees
		WHERE id = $1
	`
	rec, err := r.scanOne(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, fmt.Errorf("find employee %d: %w", id, err)
	}
	return r.FromRecord(rec), nil
}

func (r *EmployeeRepository) FindByName(ctx context.Context, name string) (*domain.Employee, error) {
	const q = `
		SELECT id, name, job_title, department_id
		FROM employees
		WHERE name = $1
		LIMIT 1
	`
	rec, err := r.scanOne(r.db.QueryRow(ctx, q, name))
	if err != nil {
		return nil, fmt.Errorf("find employee %q: %w", name, err)
	}
	return r.FromRecord(rec), nil
}

// Exists reports whether employee id is persisted. The lookup goes through
// FindByID, so a hit is also cached.
func (r *EmployeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	e, err := r.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return e != nil, nil
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*domain.Employee, error) {
	const q = `
		SELECT id, name, job_title, department_id
		FROM employees
		ORDER BY id
	`
	return r.list(ctx, "list employees", q)
}

// ForDepartment lists the department's employees; empty when d is unsaved.
func (r *EmployeeRepository) ForDepartment(ctx context.Context, d *domain.Department) ([]*domain.Employee, error) {
	if d == nil || !d.IsPersisted() {
		return []*domain.Employee{}, nil
	}
	const q = `
		SELECT id, name, job_title, department_id
		FROM employees
		WHERE department_id = $1
		ORDER BY id
	`
	return r.list(ctx, "list department employees", q, d.ID())
}

func (r *EmployeeRepository) scanOne(row pgx.Row) (*domain.EmployeeRecord, error) {
	var rec domain.EmployeeRecord
	if err := row.Scan(&rec.ID, &rec.Name, &rec.JobTitle, &rec.DepartmentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *EmployeeRepository) list(ctx context.Context, action, q string, args ...any) ([]*domain.Employee, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	defer rows.Close()

	employees := []*domain.Employee{}
	for rows.Next() {
		var rec domain.EmployeeRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.JobTitle, &rec.DepartmentID); err != nil {
			return nil, fmt.Errorf("%s: %w", action, err)
		}
		employees = append(employees, r.FromRecord(&rec))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	return employees, nil
}
