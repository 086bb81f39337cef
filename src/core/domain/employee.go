package domain

import (
	"context"
	"fmt"
)

// EmployeeRecord is an employees row.
type EmployeeRecord struct {
	ID           int64
	Name         string
	JobTitle     string
	DepartmentID int64
}

// Employee is a staff member assigned to a department.
// The zero id means the employee has not been saved, or was deleted.
type Employee struct {
	id           int64
	name         string
	jobTitle     string
	departmentID int64

	departments Resolver
}

// NewEmployee builds a transient employee, running every field validator.
// departments is kept for later SetDepartmentID calls.
func NewEmployee(ctx context.Context, name, jobTitle string, departmentID int64, departments Resolver) (*Employee, error) {
	e := &Employee{departments: departments}
	if err := e.SetName(name); err != nil {
		return nil, err
	}
	if err := e.SetJobTitle(jobTitle); err != nil {
		return nil, err
	}
	if err := e.SetDepartmentID(ctx, departmentID); err != nil {
		return nil, err
	}
	return e, nil
}

// RestoreEmployee builds an employee from a stored row. Stored values are
// trusted and not revalidated.
func RestoreEmployee(rec EmployeeRecord, departments Resolver) *Employee {
	return &Employee{
		id:           rec.ID,
		name:         rec.Name,
		jobTitle:     rec.JobTitle,
		departmentID: rec.DepartmentID,
		departments:  departments,
	}
}

func (e *Employee) ID() int64           { return e.id }
func (e *Employee) IsPersisted() bool   { return e.id != 0 }
func (e *Employee) Name() string        { return e.name }
func (e *Employee) JobTitle() string    { return e.jobTitle }
func (e *Employee) DepartmentID() int64 { return e.departmentID }

// SetName assigns a trimmed, non-empty name.
func (e *Employee) SetName(name string) error {
	v, err := requireText("name", name)
	if err != nil {
		return err
	}
	e.name = v
	return nil
}

// SetJobTitle assigns a trimmed, non-empty job title.
func (e *Employee) SetJobTitle(jobTitle string) error {
	v, err := requireText("job_title", jobTitle)
	if err != nil {
		return err
	}
	e.jobTitle = v
	return nil
}

// SetDepartmentID assigns the department after confirming it is persisted.
func (e *Employee) SetDepartmentID(ctx context.Context, departmentID int64) error {
	if err := requireReference(ctx, "department_id", "department", departmentID, e.departments); err != nil {
		return err
	}
	e.departmentID = departmentID
	return nil
}

// Record returns the current column values.
func (e *Employee) Record() EmployeeRecord {
	return EmployeeRecord{
		ID:           e.id,
		Name:         e.name,
		JobTitle:     e.jobTitle,
		DepartmentID: e.departmentID,
	}
}

// Refresh overwrites the columns with values read from the store.
func (e *Employee) Refresh(rec EmployeeRecord) {
	e.name = rec.Name
	e.jobTitle = rec.JobTitle
	e.departmentID = rec.DepartmentID
}

// MarkPersisted records the id the store assigned.
func (e *Employee) MarkPersisted(id int64) { e.id = id }

// MarkDeleted clears the id after the row has been removed.
func (e *Employee) MarkDeleted() { e.id = 0 }

func (e *Employee) String() string {
	return fmt.Sprintf("<Employee id=%d name=%q title=%q dept_id=%d>", e.id, e.name, e.jobTitle, e.departmentID)
}
