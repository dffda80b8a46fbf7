package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// conferenceIDParam is the URL parameter naming the conference a request
// targets.
const conferenceIDParam = "conferenceId"

// routeInfo returns the matched chi route pattern and the conference id
// parameter. It is only meaningful once routing has run, so callers read it
// after next.ServeHTTP returns. Outside a chi router the raw path is used.
func routeInfo(r *http.Request) (pattern, conferenceID string) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path, ""
	}
	pattern = rctx.RoutePattern()
	if pattern == "" {
		pattern = r.URL.Path
	}
	return pattern, rctx.URLParam(conferenceIDParam)
}
