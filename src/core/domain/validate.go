package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// requireText trims value and rejects it when nothing is left.
func requireText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if err := validate.Var(trimmed, "required"); err != nil {
		return "", NewValidationError(field, "must be a non-empty string")
	}
	return trimmed, nil
}

func requireYear(field string, year int) error {
	if err := validate.Var(year, fmt.Sprintf("gte=%d", MinReviewYear)); err != nil {
		return NewValidationError(field, fmt.Sprintf("must be an integer >= %d", MinReviewYear))
	}
	return nil
}

// requireReference checks that id names a persisted row of kind.
// Lookup failures are returned as-is; a missing row is an invalid argument.
func requireReference(ctx context.Context, field, kind string, id int64, resolver Resolver) error {
	if resolver == nil {
		return NewStateError(fmt.Sprintf("no %s resolver configured for %s", kind, field))
	}
	if id <= 0 {
		return NewValidationError(field, fmt.Sprintf("must refer to a persisted %s", kind))
	}
	ok, err := resolver.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("resolve %s %d: %w", kind, id, err)
	}
	if !ok {
		return NewValidationError(field, fmt.Sprintf("must refer to a persisted %s", kind))
	}
	return nil
}
