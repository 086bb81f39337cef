package domain

import "context"

// Resolver reports whether a persisted row with the given id exists.
// Entities consult it when a foreign key field is assigned.
type Resolver interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(ctx context.Context, id int64) (bool, error)

// Exists calls f(ctx, id).
func (f ResolverFunc) Exists(ctx context.Context, id int64) (bool, error) {
	return f(ctx, id)
}
