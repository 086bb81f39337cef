// Package response defines the JSON envelopes the CLI writes to stdout.
// Every command prints either a Success or an Error.
package response

import (
	"encoding/json"
	"errors"
	"io"

	"staffrecords/src/core/domain"
)

// Exit codes, one per error kind.
const (
	ExitOK              = 0
	ExitInternal        = 1
	ExitInvalidArgument = 2
	ExitInvalidState    = 3
	ExitNotFound        = 4
	ExitConflict        = 5
)

// Success represents a successful response with data.
type Success struct {
	Data  any    `json:"data"`
	RunID string `json:"run_id,omitempty"`
}

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "INVALID_ARGUMENT")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// RunID correlates the output with the log lines of the invocation
	RunID string `json:"run_id,omitempty"`
}

// OK writes data wrapped in a Success envelope.
func OK(w io.Writer, runID string, data any) error {
	return write(w, Success{Data: data, RunID: runID})
}

// Fail writes err as an Error envelope and returns the matching exit code.
func Fail(w io.Writer, runID string, err error) int {
	detail := FromError(err)
	detail.RunID = runID
	_ = write(w, Error{Error: detail})
	return ExitCode(err)
}

// FromError converts an error into an ErrorDetail, keeping the field name of
// validation failures.
func FromError(err error) ErrorDetail {
	detail := ErrorDetail{Code: code(err), Message: err.Error()}
	var de *domain.DomainError
	if errors.As(err, &de) {
		detail.Field = de.Field
	}
	return detail
}

// ExitCode maps an error to a process exit code. nil maps to ExitOK.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case domain.IsInvalidArgument(err):
		return ExitInvalidArgument
	case domain.IsInvalidState(err):
		return ExitInvalidState
	case domain.IsNotFound(err):
		return ExitNotFound
	case domain.IsConflict(err):
		return ExitConflict
	default:
		return ExitInternal
	}
}

func code(err error) string {
	switch {
	case domain.IsInvalidArgument(err):
		return "INVALID_ARGUMENT"
	case domain.IsInvalidState(err):
		return "INVALID_STATE"
	case domain.IsNotFound(err):
		return "NOT_FOUND"
	case domain.IsConflict(err):
		return "CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}

func write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
