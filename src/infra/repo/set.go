package repo

import (
	"log/slog"

	"staffrecords/src/infra/db"
)

// Set wires the three repositories together: departments resolve ids for
// employees, employees resolve ids for reviews. Each gets a fresh identity map.
type Set struct {
	Departments *DepartmentRepository
	Employees   *EmployeeRepository
	Reviews     *ReviewRepository
}

// NewSet builds a Set over conn.
func NewSet(conn db.DBTX, log *slog.Logger) *Set {
	departments := NewDepartmentRepository(conn, nil, log)
	employees := NewEmployeeRepository(conn, departments, nil, log)
	reviews := NewReviewRepository(conn, employees, nil, log)
	return &Set{
		Departments: departments,
		Employees:   employees,
		Reviews:     reviews,
	}
}
