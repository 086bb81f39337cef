// Package dto contains the JSON shapes the CLI prints.
//
// Entities keep their fields unexported so that every write goes through a
// validating setter; the views here are the read-only projection used for
// output.
//
// Naming convention:
//   - <Resource>Response for a single entity, built with <Resource>FromDomain
//   - <Resource>List for slices
package dto
