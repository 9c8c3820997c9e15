// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/acclimations/todo-backend/internal/domain"
	"github.com/acclimations/todo-backend/internal/domain/todo"
	"github.com/acclimations/todo-backend/internal/platform/logging"
	"github.com/acclimations/todo-backend/internal/platform/telemetry"
	"github.com/acclimations/todo-backend/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

const resourceTodo = "todo"

// errIDRetired reports a save the store dropped because the ID was deleted.
var errIDRetired = errors.New("todo id has been deleted")

// TodoService implements ports.TodoService on top of a TodoStore. It owns
// every business rule: input validation, defaults, timestamps, and
// existence checks. The store it wraps is never exposed.
type TodoService struct {
	store   ports.TodoStore
	logger  *slog.Logger
	metrics *telemetry.Metrics
	now     func() time.Time
}

// Option configures a TodoService.
type Option func(*TodoService)

// WithClock overrides the time source used for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *TodoService) {
		s.now = now
	}
}

// WithMetrics enables operation metrics. A nil value disables them.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *TodoService) {
		s.metrics = m
	}
}

// NewTodoService creates a TodoService backed by the given store. A nil
// logger is replaced with a discarding one.
func NewTodoService(store ports.TodoStore, logger *slog.Logger, opts ...Option) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &TodoService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListTodos returns a snapshot of every stored todo.
func (s *TodoService) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	s.log(ctx).InfoContext(ctx, "listing todos")

	todos := s.store.List(ctx)
	s.metrics.RecordOperation(ctx, "ListTodos", nil)
	return todos, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id string) (*todo.Todo, error) {
	s.log(ctx).InfoContext(ctx, "fetching todo", slog.String("id", id))

	t, err := s.get(ctx, id)
	s.metrics.RecordOperation(ctx, "GetTodo", err)
	if err != nil {
		s.logFailure(ctx, "GetTodo", id, err)
		return nil, err
	}
	return t, nil
}

// CreateTodo validates the input and persists a new todo. Completed
// defaults to false and nil tags become an empty list.
func (s *TodoService) CreateTodo(ctx context.Context, in todo.CreateInput) (*todo.Todo, error) {
	s.log(ctx).InfoContext(ctx, "creating todo", slog.String("title", in.Title))

	created, err := s.create(ctx, in)
	s.metrics.RecordOperation(ctx, "CreateTodo", err)
	if err != nil {
		s.logFailure(ctx, "CreateTodo", "", err)
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "todo created", slog.String("id", created.ID))
	return created, nil
}

// UpdateTodo replaces title, description, completion state, and tags of an
// existing todo. Omitted description and tags are cleared. ID and
// CreatedAt are preserved; UpdatedAt is refreshed.
func (s *TodoService) UpdateTodo(ctx context.Context, id string, in todo.UpdateInput) (*todo.Todo, error) {
	s.log(ctx).InfoContext(ctx, "updating todo", slog.String("id", id))

	updated, err := s.update(ctx, id, in)
	s.metrics.RecordOperation(ctx, "UpdateTodo", err)
	if err != nil {
		s.logFailure(ctx, "UpdateTodo", id, err)
		return nil, err
	}
	return updated, nil
}

// DeleteTodo removes an existing todo. Of two concurrent deletes for the
// same ID exactly one succeeds; the other gets NotFound.
func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	s.log(ctx).InfoContext(ctx, "deleting todo", slog.String("id", id))

	var err error
	if !s.store.ExistsByID(ctx, id) || !s.store.DeleteByID(ctx, id) {
		err = notFound(id)
	}
	s.metrics.RecordOperation(ctx, "DeleteTodo", err)
	if err != nil {
		s.logFailure(ctx, "DeleteTodo", id, err)
	}
	return err
}

func (s *TodoService) get(ctx context.Context, id string) (*todo.Todo, error) {
	t, ok := s.store.Get(ctx, id)
	if !ok {
		return nil, notFound(id)
	}
	return &t, nil
}

func (s *TodoService) create(ctx context.Context, in todo.CreateInput) (*todo.Todo, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	t := todo.Todo{
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if err := t.SetTags(in.Tags, now); err != nil {
		return nil, err
	}

	return s.persist(ctx, t)
}

func (s *TodoService) update(ctx context.Context, id string, in todo.UpdateInput) (*todo.Todo, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	t, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	// t is the store's copy; a rejected change below never reaches Save.
	now := s.now()
	t.Title = in.Title
	t.Description = in.Description
	t.SetCompleted(*in.Completed, now)
	if err := t.SetTags(in.Tags, now); err != nil {
		return nil, err
	}

	saved, err := s.persist(ctx, *t)
	if errors.Is(err, errIDRetired) {
		// Deleted between the lookup and the save.
		return nil, notFound(id)
	}
	return saved, err
}

// persist checks the entity invariants once more and hands t to the store.
func (s *TodoService) persist(ctx context.Context, t todo.Todo) (*todo.Todo, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("persisting todo: %w", err)
	}
	saved, ok := s.store.Save(ctx, t)
	if !ok {
		return nil, fmt.Errorf("saving todo %q: %w", t.ID, errIDRetired)
	}
	return &saved, nil
}

func notFound(id string) error {
	return &domain.NotFoundError{Resource: resourceTodo, ID: id}
}

// log returns the request-scoped logger when middleware stored one, so
// service entries carry request and correlation IDs.
func (s *TodoService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

// logFailure logs a failed operation. Validation and not-found outcomes are
// expected client errors and are logged at warn; everything else at error.
func (s *TodoService) logFailure(ctx context.Context, operation, id string, err error) {
	level := slog.LevelError
	if isClientError(err) {
		level = slog.LevelWarn
	}
	attrs := []slog.Attr{slog.String("operation", operation)}
	if id != "" {
		attrs = append(attrs, slog.String("id", id))
	}
	attrs = append(attrs, slog.Any("error", err))
	s.log(ctx).LogAttrs(ctx, level, "todo operation failed", attrs...)
}

func isClientError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation)
}
