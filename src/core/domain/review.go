package domain

import (
	"context"
	"fmt"
)

// ReviewRecord is a reviews row.
type ReviewRecord struct {
	ID         int64
	Year       int
	Summary    string
	EmployeeID int64
}

// Review is a yearly performance review of one employee.
type Review struct {
	id         int64
	year       int
	summary    string
	employeeID int64

	employees Resolver
}

// NewReview builds a transient review, running every field validator.
func NewReview(ctx context.Context, year int, summary string, employeeID int64, employees Resolver) (*Review, error) {
	r := &Review{employees: employees}
	if err := r.SetYear(year); err != nil {
		return nil, err
	}
	if err := r.SetSummary(summary); err != nil {
		return nil, err
	}
	if err := r.SetEmployeeID(ctx, employeeID); err != nil {
		return nil, err
	}
	return r, nil
}

// RestoreReview builds a review from a stored row without validation.
func RestoreReview(rec ReviewRecord, employees Resolver) *Review {
	return &Review{
		id:         rec.ID,
		year:       rec.Year,
		summary:    rec.Summary,
		employeeID: rec.EmployeeID,
		employees:  employees,
	}
}

func (r *Review) ID() int64         { return r.id }
func (r *Review) IsPersisted() bool { return r.id != 0 }
func (r *Review) Year() int         { return r.year }
func (r *Review) Summary() string   { return r.summary }
func (r *Review) EmployeeID() int64 { return r.employeeID }

// SetYear assigns the review year; it must not precede MinReviewYear.
func (r *Review) SetYear(year int) error {
	if err := requireYear("year", year); err != nil {
		return err
	}
	r.year = year
	return nil
}

// SetSummary assigns a trimmed, non-empty summary.
func (r *Review) SetSummary(summary string) error {
	v, err := requireText("summary", summary)
	if err != nil {
		return err
	}
	r.summary = v
	return nil
}

// SetEmployeeID assigns the reviewed employee after confirming it is persisted.
func (r *Review) SetEmployeeID(ctx context.Context, employeeID int64) error {
	if err := requireReference(ctx, "employee_id", "employee", employeeID, r.employees); err != nil {
		return err
	}
	r.employeeID = employeeID
	return nil
}

// Record returns the current column values.
func (r *Review) Record() ReviewRecord {
	return ReviewRecord{
		ID:         r.id,
		Year:       r.year,
		Summary:    r.summary,
		EmployeeID: r.employeeID,
	}
}

// Refresh overwrites the columns with values read from the store.
func (r *Review) Refresh(rec ReviewRecord) {
	r.year = rec.Year
	r.summary = rec.Summary
	r.employeeID = rec.EmployeeID
}

// MarkPersisted records the id the store assigned.
func (r *Review) MarkPersisted(id int64) { r.id = id }

// MarkDeleted clears the id after the row has been removed.
func (r *Review) MarkDeleted() { r.id = 0 }

func (r *Review) String() string {
	return fmt.Sprintf("<Review id=%d year=%d employee_id=%d summary=%q>", r.id, r.year, r.employeeID, r.summary)
}
