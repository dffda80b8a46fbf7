package middleware

import (
	"log/slog"
	"net/http"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveHeaders is the set of header names (lowercase) that must be
// redacted before logging. These headers commonly carry credentials.
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// RedactHeaders converts an http.Header map into a slice of slog.Attr values
// suitable for structured logging. Headers whose lowercase name appears in
// sensitiveHeaders are replaced with "[REDACTED]"; all others are included
// as-is. Multi-value headers are joined with a comma.
//
// Authorization keeps its scheme ("Bearer [REDACTED]") so a rejected request
// still shows which kind of credential the caller sent.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		name := strings.ToLower(key)
		switch {
		case name == "authorization":
			attrs = append(attrs, slog.String(key, redactCredentials(strings.Join(vals, ","))))
		case sensitiveHeaders[name]:
			attrs = append(attrs, slog.String(key, redacted))
		default:
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}

// redactCredentials masks everything after the auth scheme.
func redactCredentials(value string) string {
	scheme, _, found := strings.Cut(strings.TrimSpace(value), " ")
	if !found || scheme == "" {
		return redacted
	}
	return scheme + " " + redacted
}
