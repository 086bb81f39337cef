package usecase

import (
	"context"
	"log/slog"

	"staffrecords/src/core/domain"
	"staffrecords/src/core/ports"
)

// StaffService handles department, employee and review flows.
type StaffService struct {
	departments ports.DepartmentRepository
	employees   ports.EmployeeRepository
	reviews     ports.ReviewRepository
	log         *slog.Logger
}

func NewStaffService(departments ports.DepartmentRepository, employees ports.EmployeeRepository, reviews ports.ReviewRepository, log *slog.Logger) *StaffService {
	return &StaffService{
		departments: departments,
		employees:   employees,
		reviews:     reviews,
		log:         log,
	}
}

// EmployeeChanges lists the employee fields to reassign; nil fields are kept.
type EmployeeChanges struct {
	Name         *string
	JobTitle     *string
	DepartmentID *int64
}

// ReviewChanges lists the review fields to reassign; nil fields are kept.
type ReviewChanges struct {
	Year       *int
	Summary    *string
	EmployeeID *int64
}

// Departments

func (s *StaffService) OpenDepartment(ctx context.Context, name string) (*domain.Department, error) {
	d, err := s.departments.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.log.Info("department opened", "id", d.ID(), "name", d.Name())
	return d, nil
}

func (s *StaffService) Department(ctx context.Context, id int64) (*domain.Department, error) {
	d, err := s.departments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.NewNotFoundError("department")
	}
	return d, nil
}

func (s *StaffService) Departments(ctx context.Context) ([]*domain.Department, error) {
	return s.departments.GetAll(ctx)
}

// StaffOf lists the employees of department id.
func (s *StaffService) StaffOf(ctx context.Context, id int64) ([]*domain.Employee, error) {
	d, err := s.Department(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.employees.ForDepartment(ctx, d)
}

// Employees

func (s *StaffService) HireEmployee(ctx context.Context, name, jobTitle string, departmentID int64) (*domain.Employee, error) {
	e, err := s.employees.Create(ctx, name, jobTitle, departmentID)
	if err != nil {
		return nil, err
	}
	s.log.Info("employee hired", "id", e.ID(), "department_id", e.DepartmentID())
	return e, nil
}

func (s *StaffService) Employee(ctx context.Context, id int64) (*domain.Employee, error) {
	e, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NewNotFoundError("employee")
	}
	return e, nil
}

func (s *StaffService) EmployeeByName(ctx context.Context, name string) (*domain.Employee, error) {
	e, err := s.employees.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NewNotFoundError("employee")
	}
	return e, nil
}

func (s *StaffService) Employees(ctx context.Context) ([]*domain.Employee, error) {
	return s.employees.GetAll(ctx)
}

// UpdateEmployee assigns the requested fields and saves. When any field is
// rejected the cached employee is restored and nothing is written.
func (s *StaffService) UpdateEmployee(ctx context.Context, id int64, changes EmployeeChanges) (*domain.Employee, error) {
	e, err := s.Employee(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := e.Record()
	if err := applyEmployeeChanges(ctx, e, changes); err != nil {
		e.Refresh(prev)
		return nil, err
	}
	return s.employees.Save(ctx, e)
}

func applyEmployeeChanges(ctx context.Context, e *domain.Employee, changes EmployeeChanges) error {
	if changes.Name != nil {
		if err := e.SetName(*changes.Name); err != nil {
			return err
		}
	}
	if changes.JobTitle != nil {
		if err := e.SetJobTitle(*changes.JobTitle); err != nil {
			return err
		}
	}
	if changes.DepartmentID != nil {
		if err := e.SetDepartmentID(ctx, *changes.DepartmentID); err != nil {
			return err
		}
	}
	return nil
}

// DismissEmployee deletes the employee row. Reviews of the employee are not
// removed; the store may refuse the delete while they exist.
func (s *StaffService) DismissEmployee(ctx context.Context, id int64) error {
	e, err := s.Employee(ctx, id)
	if err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, e); err != nil {
		return err
	}
	s.log.Info("employee dismissed", "id", id)
	return nil
}

// Reviews

func (s *StaffService) ReviewsOf(ctx context.Context, employeeID int64) ([]*domain.Review, error) {
	e, err := s.Employee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return s.reviews.ForEmployee(ctx, e)
}

func (s *StaffService) RecordReview(ctx context.Context, year int, summary string, employeeID int64) (*domain.Review, error) {
	r, err := s.reviews.Create(ctx, year, summary, employeeID)
	if err != nil {
		return nil, err
	}
	s.log.Info("review recorded", "id", r.ID(), "employee_id", employeeID, "year", year)
	return r, nil
}

func (s *StaffService) Review(ctx context.Context, id int64) (*domain.Review, error) {
	r, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NewNotFoundError("review")
	}
	return r, nil
}

func (s *StaffService) Reviews(ctx context.Context) ([]*domain.Review, error) {
	return s.reviews.GetAll(ctx)
}

// UpdateReview assigns the requested fields and saves, restoring the cached
// review when a field is rejected.
func (s *StaffService) UpdateReview(ctx context.Context, id int64, changes ReviewChanges) (*domain.Review, error) {
	r, err := s.Review(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := r.Record()
	if err := applyReviewChanges(ctx, r, changes); err != nil {
		r.Refresh(prev)
		return nil, err
	}
	return s.reviews.Save(ctx, r)
}

func applyReviewChanges(ctx context.Context, r *domain.Review, changes ReviewChanges) error {
	if changes.Year != nil {
		if err := r.SetYear(*changes.Year); err != nil {
			return err
		}
	}
	if changes.Summary != nil {
		if err := r.SetSummary(*changes.Summary); err != nil {
			return err
		}
	}
	if changes.EmployeeID != nil {
		if err := r.SetEmployeeID(ctx, *changes.EmployeeID); err != nil {
			return err
		}
	}
	return nil
}

func (s *StaffService) RemoveReview(ctx context.Context, id int64) error {
	r, err := s.Review(ctx, id)
	if err != nil {
		return err
	}
	return s.reviews.Delete(ctx, r)
}
