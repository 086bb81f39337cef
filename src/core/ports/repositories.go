// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"staffrecords/src/core/domain"
)

// HealthChecker reports whether the underlying storage is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Schema creates and drops the table behind one entity type.
type Schema interface {
	// CreateTable is idempotent.
	CreateTable(ctx context.Context) error
	// DropTable drops the table and flushes the whole identity map.
	DropTable(ctx context.Context) error
}

// DepartmentRepository persists departments and resolves department ids
// for employees.
//
// Find methods return (nil, nil) when no row matches.
type DepartmentRepository interface {
	Schema
	domain.Resolver

	Create(ctx context.Context, name string) (*domain.Department, error)
	Save(ctx context.Context, d *domain.Department) (*domain.Department, error)
	Update(ctx context.Context, d *domain.Department) (*domain.Department, error)
	Delete(ctx context.Context, d *domain.Department) error

	FromRecord(rec *domain.DepartmentRecord) *domain.Department
	FindByID(ctx context.Context, id int64) (*domain.Department, error)
	FindByName(ctx context.Context, name string) (*domain.Department, error)
	GetAll(ctx context.Context) ([]*domain.Department, error)
}

// EmployeeRepository persists employees and resolves employee ids for reviews.
type EmployeeRepository interface {
	Schema
	domain.Resolver

	// New builds a transient employee bound to the department resolver.
	New(ctx context.Context, name, jobTitle string, departmentID int64) (*domain.Employee, error)
	Create(ctx context.Context, name, jobTitle string, departmentID int64) (*domain.Employee, error)
	Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, e *domain.Employee) error

	FromRecord(rec *domain.EmployeeRecord) *domain.Employee
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	FindByName(ctx context.Context, name string) (*domain.Employee, error)
	GetAll(ctx context.Context) ([]*domain.Employee, error)
	ForDepartment(ctx context.Context, d *domain.Department) ([]*domain.Employee, error)
}

// ReviewRepository persists performance reviews.
type ReviewRepository interface {
	Schema

	// New builds a transient review bound to the employee resolver.
	New(ctx context.Context, year int, summary string, employeeID int64) (*domain.Review, error)
	Create(ctx context.Context, year int, summary string, employeeID int64) (*domain.Review, error)
	Save(ctx context.Context, r *domain.Review) (*domain.Review, error)
	Update(ctx context.Context, r *domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, r *domain.Review) error

	FromRecord(rec *domain.ReviewRecord) *domain.Review
	FindByID(ctx context.Context, id int64) (*domain.Review, error)
	GetAll(ctx context.Context) ([]*domain.Review, error)
	// ForEmployee lists the employee's reviews; empty when e is unsaved.
	ForEmployee(ctx context.Context, e *domain.Employee) ([]*domain.Review, error)
}
