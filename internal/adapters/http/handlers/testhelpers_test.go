package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/acclimations/todo-backend/internal/adapters/http/handlers"
	"github.com/acclimations/todo-backend/internal/domain/todo"
	"github.com/acclimations/todo-backend/mocks"
)

const testID = "0b6f8e3c-3e4f-4a53-9c8e-5c1a2d7e9f10"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// todoAPI mounts a TodoHandler under /api/v1 the way the server does.
func todoAPI(t *testing.T) (http.Handler, *mocks.MockTodoService) {
	t.Helper()
	svc := mocks.NewMockTodoService(t)
	r := chi.NewRouter()
	r.Route("/api/v1", handlers.NewTodoHandler(svc).Routes)
	return r, svc
}

func healthAPI(t *testing.T) (http.Handler, *mocks.MockHealthRegistry) {
	t.Helper()
	registry := mocks.NewMockHealthRegistry(t)
	r := chi.NewRouter()
	r.Route("/health", handlers.NewHealthHandler(registry).Routes)
	return r, registry
}

func send(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func storedTodo() todo.Todo {
	return todo.Todo{
		ID:          testID,
		Title:       "Buy milk",
		Description: "2%",
		Tags:        []string{"home"},
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
