// Package memory provides a concurrency-safe, process-local implementation
// of ports.TodoStore. All data is lost when the process exits.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/acclimations/todo-backend/internal/domain/todo"
	"github.com/acclimations/todo-backend/internal/platform/logging"
	"github.com/acclimations/todo-backend/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const checkerName = "todo-store"

// Store keeps todos in a mutex-guarded map. Every todo is copied on the way
// in and on the way out, so no caller ever holds a reference to a stored
// record. IDs of deleted todos are remembered and never accepted again.
type Store struct {
	mu      sync.RWMutex
	todos   map[string]todo.Todo
	deleted map[string]struct{}
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the UUID v4 generator used for new todos.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		todos:   make(map[string]todo.Todo),
		deleted: make(map[string]struct{}),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns a snapshot of all stored todos.
func (s *Store) List(_ context.Context) []todo.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]todo.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		out = append(out, t.Clone())
	}
	return out
}

// Get returns a copy of the todo stored under id.
func (s *Store) Get(_ context.Context, id string) (todo.Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.todos[id]
	if !ok {
		return todo.Todo{}, false
	}
	return t.Clone(), true
}

// Save assigns an ID when t has none, then inserts or replaces the record
// and returns the stored copy with true. A save for an ID that has been
// deleted is dropped and reports false: the delete wins and the ID stays
// retired.
func (s *Store) Save(ctx context.Context, t todo.Todo) (todo.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = s.nextID()
	}

	if _, gone := s.deleted[t.ID]; gone {
		logging.FromContext(ctx).DebugContext(ctx, "dropping save for deleted todo",
			slog.String("id", t.ID),
		)
		return todo.Todo{}, false
	}

	stored := t.Clone()
	s.todos[stored.ID] = stored

	logging.FromContext(ctx).DebugContext(ctx, "todo saved", slog.String("id", stored.ID))
	return stored.Clone(), true
}

// DeleteByID removes the todo stored under id and retires the ID. It
// reports whether a todo was removed; an absent ID is a no-op.
func (s *Store) DeleteByID(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return false
	}
	delete(s.todos, id)
	s.deleted[id] = struct{}{}

	logging.FromContext(ctx).DebugContext(ctx, "todo deleted", slog.String("id", id))
	return true
}

// ExistsByID reports whether id is currently stored.
func (s *Store) ExistsByID(_ context.Context, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.todos[id]
	return ok
}

// Count returns the number of stored todos. It backs the todo.items gauge.
func (s *Store) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.todos)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return checkerName
}

// HealthCheck implements ports.HealthChecker. The store is always
// available; only a canceled context is reported.
func (s *Store) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}

// nextID returns a generated ID that is neither live nor retired.
// Must be called with s.mu held.
func (s *Store) nextID() string {
	for {
		id := s.newID()
		if _, live := s.todos[id]; live {
			continue
		}
		if _, gone := s.deleted[id]; gone {
			continue
		}
		return id
	}
}
