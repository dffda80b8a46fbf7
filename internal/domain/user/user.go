// Package user defines the authenticated principal handed to use cases.
package user

import "context"

// User is an externally authenticated principal. Authentication happens in
// the inbound adapter; the core only relies on ID.
type User struct {
	ID    string
	Email string
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying u.
func WithContext(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext returns the user stored by WithContext.
func FromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(contextKey{}).(User)
	return u, ok
}
