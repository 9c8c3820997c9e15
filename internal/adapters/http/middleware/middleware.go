// Package middleware wraps the todo API's handlers. The server installs them
// outermost first:
//
//	RequestID → CorrelationID → OpenTelemetry → Logging → Recovery → Timeout
//
// so a recovered panic is logged with the request's IDs and its 500 is seen
// by the access log, the span, and the request metrics.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// recorder remembers the status sent downstream. Every middleware of one
// request shares a single recorder.
type recorder struct {
	http.ResponseWriter
	status int
}

func recordStatus(w http.ResponseWriter) *recorder {
	if rec, ok := w.(*recorder); ok {
		return rec
	}
	return &recorder{ResponseWriter: w}
}

func (rec *recorder) WriteHeader(code int) {
	if rec.status != 0 {
		return
	}
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *recorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	return rec.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the connection.
func (rec *recorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

func (rec *recorder) sent() bool {
	return rec.status != 0
}

// code is the status the client sees; a handler that wrote nothing got 200.
func (rec *recorder) code() int {
	if rec.status == 0 {
		return http.StatusOK
	}
	return rec.status
}

// routeOf is the matched chi pattern, e.g. "/api/v1/todos/{id}". It is
// empty until chi has routed the request and for unmatched paths.
func routeOf(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
