package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Headers carrying the request and correlation IDs in both directions.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

const maxIDLength = 128

type idsKey struct{}

// requestIDs are the identifiers attached to one request.
type requestIDs struct {
	request     string
	correlation string
}

func idsFrom(ctx context.Context) requestIDs {
	ids, _ := ctx.Value(idsKey{}).(requestIDs)
	return ids
}

// RequestIDFromContext returns the request's ID, or "" outside RequestID.
func RequestIDFromContext(ctx context.Context) string {
	return idsFrom(ctx).request
}

// CorrelationIDFromContext returns the request's correlation ID, or ""
// outside CorrelationID.
func CorrelationIDFromContext(ctx context.Context) string {
	return idsFrom(ctx).correlation
}

// RequestID adopts the client's X-Request-ID when it is acceptable and
// otherwise mints a UUID. The ID is echoed in the response.
func RequestID() func(http.Handler) http.Handler {
	return tagRequest(HeaderRequestID,
		func(*http.Request) string { return uuid.NewString() },
		func(ids *requestIDs, id string) { ids.request = id },
	)
}

// CorrelationID adopts the client's X-Correlation-ID when it is acceptable
// and otherwise reuses the request ID, so it must run inside RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return tagRequest(HeaderCorrelationID,
		func(r *http.Request) string { return RequestIDFromContext(r.Context()) },
		func(ids *requestIDs, id string) { ids.correlation = id },
	)
}

func tagRequest(
	header string,
	fallback func(*http.Request) string,
	assign func(*requestIDs, string),
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !acceptableID(id) {
				id = fallback(r)
			}

			ids := idsFrom(r.Context())
			assign(&ids, id)
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), idsKey{}, ids)))
		})
	}
}

// acceptableID admits 1 to 128 printable ASCII characters without spaces,
// which keeps client IDs safe to echo and to log.
func acceptableID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return strings.IndexFunc(id, func(c rune) bool { return c <= ' ' || c > '~' }) < 0
}
