package dto

import "staffrecords/src/core/domain"

// DepartmentResponse is the printed form of a department.
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EmployeeResponse is the printed form of an employee.
type EmployeeResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	JobTitle     string `json:"job_title"`
	DepartmentID int64  `json:"department_id"`
}

// ReviewResponse is the printed form of a performance review.
type ReviewResponse struct {
	ID         int64  `json:"id"`
	Year       int    `json:"year"`
	Summary    string `json:"summary"`
	EmployeeID int64  `json:"employee_id"`
}

func DepartmentFromDomain(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID(), Name: d.Name()}
}

func EmployeeFromDomain(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID(),
		Name:         e.Name(),
		JobTitle:     e.JobTitle(),
		DepartmentID: e.DepartmentID(),
	}
}

func ReviewFromDomain(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID(),
		Year:       r.Year(),
		Summary:    r.Summary(),
		EmployeeID: r.EmployeeID(),
	}
}

// DepartmentList converts departments, never returning nil so that an empty
// table prints as [].
func DepartmentList(ds []*domain.Department) []DepartmentResponse {
	return mapAll(ds, DepartmentFromDomain)
}

func EmployeeList(es []*domain.Employee) []EmployeeResponse {
	return mapAll(es, EmployeeFromDomain)
}

func ReviewList(rs []*domain.Review) []ReviewResponse {
	return mapAll(rs, ReviewFromDomain)
}

func mapAll[E any, R any](in []E, fn func(E) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

// StatusResponse reports the outcome of a command that returns no entity.
type StatusResponse struct {
	Status string `json:"status"`
}

// DeletedResponse reports a removed row.
type DeletedResponse struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}
