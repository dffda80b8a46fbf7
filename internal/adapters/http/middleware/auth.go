package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/conference-booking/internal/adapters/http/dto"
	"github.com/jsamuelsen11/conference-booking/internal/domain"
	"github.com/jsamuelsen11/conference-booking/internal/domain/user"
	"github.com/jsamuelsen11/conference-booking/internal/platform/logging"
	"github.com/jsamuelsen11/conference-booking/internal/ports"
)

const bearerPrefix = "bearer "

// Authenticate returns middleware that resolves the caller from an
// "Authorization: Bearer <token>" header. A missing, malformed or rejected
// token ends the request with a 401 problem response. On success the user is
// stored with user.WithContext and the request logger gains a user_id
// attribute.
func Authenticate(verifier ports.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized))
				return
			}

			u, err := verifier.Verify(ctx, token)
			if err != nil {
				logging.FromContext(ctx).DebugContext(ctx, "token rejected", slog.Any("error", err))
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx = user.WithContext(ctx, u)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(slog.String("user_id", u.ID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an Authorization header value. The
// scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
