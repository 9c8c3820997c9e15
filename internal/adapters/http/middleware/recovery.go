package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/acclimations/todo-backend/internal/adapters/http/dto"
	"github.com/acclimations/todo-backend/internal/platform/logging"
	"github.com/acclimations/todo-backend/internal/platform/telemetry"
)

// Recovery turns a handler panic into a 500 problem response. The panic is
// logged with its stack through the request logger when Logging runs
// outside it, falling back to logger, and counted in metrics, which may be
// nil. If the handler already sent its status only the log line and the
// count remain. http.ErrAbortHandler is passed through to net/http.
func Recovery(logger *slog.Logger, metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := recordStatus(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				ctx := r.Context()
				route := routeOf(r)
				logging.FromContextOr(ctx, logger).ErrorContext(ctx, "handler panicked",
					slog.Any("panic", v),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", route),
					slog.String("stack", string(debug.Stack())),
				)
				metrics.RecordPanic(ctx, r.Method, route)

				if !rec.sent() {
					dto.StatusProblem(r, http.StatusInternalServerError, "").Render(rec, r)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
