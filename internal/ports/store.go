package ports

import (
	"context"

	"github.com/acclimations/todo-backend/internal/domain/todo"
)

// TodoStore defines the storage port for todos.
// Implementations must be safe for concurrent use and must hand out copies,
// never references to their canonical records. A store holds no validation
// knowledge and never reports absence as an error.
type TodoStore interface {
	// List returns a snapshot of all stored todos in unspecified order.
	List(ctx context.Context) []todo.Todo

	// Get returns the todo for id and true, or the zero Todo and false.
	Get(ctx context.Context, id string) (todo.Todo, bool)

	// Save inserts or atomically replaces a todo keyed by its ID. An empty ID
	// is replaced with a newly generated unique identifier first. Returns the
	// stored copy and true, or false when the ID was deleted and the write
	// was dropped.
	Save(ctx context.Context, t todo.Todo) (todo.Todo, bool)

	// DeleteByID removes the todo for id and reports whether it was present.
	// Absent IDs are a no-op.
	DeleteByID(ctx context.Context, id string) bool

	// ExistsByID reports whether a todo with the given id is stored.
	ExistsByID(ctx context.Context, id string) bool

	// Count returns the number of stored todos.
	Count(ctx context.Context) int
}
