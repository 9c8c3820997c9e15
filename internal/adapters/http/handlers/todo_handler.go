package handlers

import (
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/acclimations/todo-backend/internal/adapters/http/dto"
	"github.com/acclimations/todo-backend/internal/ports"
)

// TodoHandler serves the todo collection and its items.
type TodoHandler struct {
	service ports.TodoService
}

// NewTodoHandler returns a handler backed by service.
func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// Routes mounts the todo resource on r:
//
//	GET    /todos       list, a bare JSON array
//	POST   /todos       create, 201 with Location
//	GET    /todos/{id}  fetch
//	PUT    /todos/{id}  replace
//	DELETE /todos/{id}  remove, 204
func (h *TodoHandler) Routes(r chi.Router) {
	r.Method(http.MethodGet, "/todos", endpoint(h.list))
	r.Method(http.MethodPost, "/todos", endpoint(h.create))
	r.Method(http.MethodGet, "/todos/{id}", endpoint(h.get))
	r.Method(http.MethodPut, "/todos/{id}", endpoint(h.replace))
	r.Method(http.MethodDelete, "/todos/{id}", endpoint(h.remove))
}

func (h *TodoHandler) list(w http.ResponseWriter, r *http.Request) error {
	todos, err := h.service.ListTodos(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, dto.ToTodoList(todos))
	return nil
}

func (h *TodoHandler) create(w http.ResponseWriter, r *http.Request) error {
	var body dto.CreateTodoRequest
	if err := readBody(w, r, &body); err != nil {
		return err
	}

	created, err := h.service.CreateTodo(r.Context(), body.ToInput())
	if err != nil {
		return err
	}
	w.Header().Set("Location", path.Join(r.URL.Path, created.ID))
	writeJSON(w, r, http.StatusCreated, dto.ToTodoResponse(created))
	return nil
}

func (h *TodoHandler) get(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}

	t, err := h.service.GetTodo(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(t))
	return nil
}

func (h *TodoHandler) replace(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}
	var body dto.UpdateTodoRequest
	if err := readBody(w, r, &body); err != nil {
		return err
	}

	updated, err := h.service.UpdateTodo(r.Context(), id, body.ToInput())
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(updated))
	return nil
}

func (h *TodoHandler) remove(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}
	if err := h.service.DeleteTodo(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
