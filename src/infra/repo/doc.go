// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports.
// Each repository owns one table and one identity map.
//
// Naming convention:
//   - Files: <entity>_repo.go (e.g., employee_repo.go, review_repo.go)
//   - Types: <Entity>Repository (e.g., EmployeeRepository, ReviewRepository)
//
// All repositories receive a db.DBTX executor and their identity map via
// constructor injection. Reads go through FromRecord, so loading the same
// row twice yields the same object, refreshed with the latest columns.
//
// The identity maps are not synchronized; a Set must be used from a
// single goroutine.
package repo
