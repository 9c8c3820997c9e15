package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/acclimations/todo-backend/internal/platform/logging"
)

// Logging gives each request a logger tagged with its request, correlation,
// and trace IDs, stores it in the context for handlers and the service, and
// writes one access line when the request completes. Server errors complete
// at error level. Headers are logged at debug level with credentials masked.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()
			ctx := r.Context()

			reqLog := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
				reqLog = reqLog.With(slog.String("trace_id", sc.TraceID().String()))
			}
			ctx = logging.WithLogger(ctx, reqLog)

			reqLog.DebugContext(ctx, "request received",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("headers", headerLog(r.Header)),
			)

			rec := recordStatus(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			level := slog.LevelInfo
			if rec.code() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			reqLog.LogAttrs(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routeOf(r)),
				slog.Int("status", rec.code()),
				slog.Duration("duration", time.Since(began)),
			)
		})
	}
}
