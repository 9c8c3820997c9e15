// Package handlers serves the todo API's resources over HTTP. Each handler
// mounts its own routes and reports failures as errors, which are rendered
// as RFC 9457 problems in one place.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/acclimations/todo-backend/internal/adapters/http/dto"
	"github.com/acclimations/todo-backend/internal/domain"
	"github.com/acclimations/todo-backend/internal/platform/logging"
)

// maxBodyBytes caps request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

// endpoint is a handler that returns its failure instead of rendering it.
// Nothing may be written before a non-nil error is returned.
type endpoint func(w http.ResponseWriter, r *http.Request) error

func (e endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := e(w, r); err != nil {
		dto.RenderError(w, r, err)
	}
}

// idParam returns the trimmed {id} path segment.
func idParam(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		return "", &domain.ValidationError{Fields: map[string]string{"path.id": domain.MsgRequired}}
	}
	return id, nil
}

// shapeChecked is a request body that can vet itself before use.
type shapeChecked interface {
	Validate() error
}

// readBody decodes a JSON body of at most maxBodyBytes into dst and checks
// its shape. Malformed or oversized bodies are validation errors on "body".
func readBody(w http.ResponseWriter, r *http.Request, dst shapeChecked) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		reason := "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			reason = "exceeds 1 MiB"
		}
		return &domain.ValidationError{Fields: map[string]string{"body": reason}}
	}
	return dst.Validate()
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing response body",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}
