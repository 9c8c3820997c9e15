package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/acclimations/todo-backend/internal/domain"
	"github.com/acclimations/todo-backend/internal/platform/logging"
)

// ContentTypeProblem is the media type of every error body.
const ContentTypeProblem = "application/problem+json"

// internalDetail replaces the message of unclassified errors on the wire.
const internalDetail = "an unexpected error occurred"

// Problem is an RFC 9457 problem details document. Type is always
// "about:blank", so Title is the status text.
type Problem struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// FieldError points at one rejected request field, e.g. "body.title" or
// "path.id".
type FieldError struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// StatusProblem describes a bare status for the request.
func StatusProblem(r *http.Request, status int, detail string) Problem {
	return Problem{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.URL.RequestURI(),
	}
}

// ProblemFromError classifies err by its domain kind. Anything that is
// neither a validation nor a not-found error is a 500 whose text stays
// off the wire.
func ProblemFromError(r *http.Request, err error) Problem {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		p := StatusProblem(r, http.StatusBadRequest, err.Error())
		p.Errors = fieldErrors(verr.Fields)
		return p
	case errors.Is(err, domain.ErrValidation):
		return StatusProblem(r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return StatusProblem(r, http.StatusNotFound, err.Error())
	default:
		return StatusProblem(r, http.StatusInternalServerError, internalDetail)
	}
}

// Render writes p with its status code.
func (p Problem) Render(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing problem body",
			slog.Int("status", p.Status),
			slog.Any("error", err),
		)
	}
}

// RenderError renders the problem for err. Server faults are logged through
// the request logger first, since the body hides their cause.
func RenderError(w http.ResponseWriter, r *http.Request, err error) {
	p := ProblemFromError(r, err)
	if p.Status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	p.Render(w, r)
}

// fieldErrors sorts fields by location. Bare names are body fields.
func fieldErrors(fields map[string]string) []FieldError {
	out := make([]FieldError, 0, len(fields))
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		loc := name
		if !strings.Contains(name, ".") {
			loc = "body." + name
		}
		out = append(out, FieldError{Location: loc, Message: fields[name]})
	}
	return out
}
