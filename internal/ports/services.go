package ports

import (
	"context"

	"github.com/acclimations/todo-backend/internal/domain/todo"
)

// TodoService defines the service port for the todo item lifecycle.
// Implemented by the application layer; called by inbound adapters (handlers).
// It is the only entry point to the store: no adapter talks to TodoStore directly.
type TodoService interface {
	// ListTodos returns a snapshot of every stored todo. Order is unspecified.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns a *domain.NotFoundError (wrapping domain.ErrNotFound) if absent.
	GetTodo(ctx context.Context, id string) (*todo.Todo, error)

	// CreateTodo validates the input, applies defaults, and persists a new
	// todo with server-assigned fields (ID, timestamps).
	// Returns domain.ErrValidation if the input fails validation.
	CreateTodo(ctx context.Context, in todo.CreateInput) (*todo.Todo, error)

	// UpdateTodo fully replaces the mutable fields of an existing todo,
	// preserving its ID and CreatedAt.
	// Returns domain.ErrValidation if the input fails validation and
	// domain.ErrNotFound if the todo does not exist.
	UpdateTodo(ctx context.Context, id string, in todo.UpdateInput) (*todo.Todo, error)

	// DeleteTodo removes a todo. The ID is never reused.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id string) error
}
