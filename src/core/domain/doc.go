// Package domain contains the core domain model for the staff records layer.
//
// This package defines:
//   - Entities: Department, Employee and Review, each with an optional
//     integer identity that is set once the row has been persisted
//   - Records: plain row snapshots used to move column values in and out
//     of the store
//   - Domain Errors: InvalidArgument, InvalidState, NotFound and Conflict
//
// Rules for this package:
//   - No infrastructure concerns (database, CLI, etc.)
//   - Every validated field is assigned through its setter, so a rejected
//     value leaves the previous value in place
//   - Foreign keys are checked through a Resolver at assignment time
//
// Example:
//
//	emp, err := domain.NewEmployee(ctx, "Ana Li", "Engineer", 1, departments)
//	if err != nil {
//	    return err // domain.IsInvalidArgument(err) for a bad field
//	}
//	if err := emp.SetJobTitle("Staff Engineer"); err != nil {
//	    return err
//	}
package domain
