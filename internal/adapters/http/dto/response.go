// Package dto holds the JSON shapes of the todo API: request bodies with
// their shape checks, todo bodies, and RFC 9457 problem documents.
package dto

import (
	"slices"
	"time"

	"github.com/acclimations/todo-backend/internal/domain/todo"
)

// TodoResponse is a todo on the wire. Keys use the front-end's camelCase
// names and timestamps are RFC 3339 with nanoseconds.
type TodoResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// ToTodoResponse renders t. Tags come out as a fresh list, never null.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	tags := []string{}
	if len(t.Tags) > 0 {
		tags = slices.Clone(t.Tags)
	}
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Tags:        tags,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// ToTodoList renders the list endpoint body: a bare JSON array, "[]" when
// there are no todos.
func ToTodoList(todos []todo.Todo) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		out = append(out, ToTodoResponse(&todos[i]))
	}
	return out
}
