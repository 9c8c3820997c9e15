// Package http is the todo API's inbound adapter: the chi router that maps
// routes onto handlers and the server that runs it.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acclimations/todo-backend/internal/adapters/http/dto"
	"github.com/acclimations/todo-backend/internal/adapters/http/handlers"
)

// NewRouter mounts the health checks under /health and the todo resource
// under /api/v1, behind mws in the order given. Unknown paths and methods
// get 404 and 405 problems.
func NewRouter(
	todos *handlers.TodoHandler,
	health *handlers.HealthHandler,
	mws ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(mws...)

	// Set before mounting so the sub-routers inherit them.
	r.NotFound(bareStatus(http.StatusNotFound))
	r.MethodNotAllowed(bareStatus(http.StatusMethodNotAllowed))

	r.Route("/health", health.Routes)
	r.Route("/api/v1", todos.Routes)
	return r
}

func bareStatus(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dto.StatusProblem(r, status, "").Render(w, r)
	}
}
