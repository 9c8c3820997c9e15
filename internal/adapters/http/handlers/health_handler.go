package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acclimations/todo-backend/internal/ports"
)

// HealthHandler answers orchestrator liveness and readiness checks.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler returns a handler reporting on registry's components.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Routes mounts GET /live and GET /ready on r.
func (h *HealthHandler) Routes(r chi.Router) {
	r.Get("/live", h.live)
	r.Get("/ready", h.ready)
}

type readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// live answers 200 for as long as the process can serve HTTP at all.
func (h *HealthHandler) live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// ready answers 200 when every registered component is healthy and 503
// otherwise, naming each component's result.
func (h *HealthHandler) ready(w http.ResponseWriter, r *http.Request) {
	body := readiness{Status: "ready", Checks: make(map[string]string)}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			body.Checks[name] = "ok"
			continue
		}
		body.Checks[name] = err.Error()
		body.Status = "not_ready"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, body)
}
