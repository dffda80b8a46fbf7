package ports

import (
	"context"

	"github.com/jsamuelsen11/conference-booking/internal/domain/user"
)

// TokenVerifier turns a bearer token into the authenticated principal.
// Implemented by the auth adapter; called by the HTTP auth middleware.
type TokenVerifier interface {
	// Verify validates the token signature and claims.
	// Returns domain.ErrUnauthorized for any invalid, expired or malformed token.
	Verify(ctx context.Context, token string) (user.User, error)
}
