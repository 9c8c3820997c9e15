// Package seed loads an initial set of todos from a YAML file at startup.
// Seeded todos go through ports.TodoService, so they obey the same
// validation, defaults, and timestamps as todos created over HTTP.
//
// File format:
//
//	todos:
//	  - title: Buy milk
//	    description: 2% from the corner shop
//	    completed: false
//	    tags: [home, errands]
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/acclimations/todo-backend/internal/domain/todo"
	"github.com/acclimations/todo-backend/internal/ports"
)

// File is the top-level document of a seed file.
type File struct {
	Todos []Entry `yaml:"todos"`
}

// Entry is one seeded todo. Completed is optional and defaults to false.
type Entry struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Completed   *bool    `yaml:"completed"`
	Tags        []string `yaml:"tags"`
}

// Parse decodes a seed document. Unknown keys are rejected so that typos
// such as "tag:" do not silently drop data. An empty document yields no
// entries.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decoding seed yaml: %w", err)
	}
	return &f, nil
}

// LoadFile reads the seed file at path and creates every entry through svc.
// Loading stops at the first entry the service rejects; todos created before
// it remain. Returns the number of todos created.
func LoadFile(ctx context.Context, path string, svc ports.TodoService, logger *slog.Logger) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading seed file %s: %w", path, err)
	}

	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	return Apply(ctx, f, svc, logger)
}

// Apply creates every entry of f through svc in file order.
func Apply(ctx context.Context, f *File, svc ports.TodoService, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	for i, e := range f.Todos {
		created, err := svc.CreateTodo(ctx, todo.CreateInput{
			Title:       e.Title,
			Description: e.Description,
			Completed:   e.Completed,
			Tags:        e.Tags,
		})
		if err != nil {
			return i, fmt.Errorf("seed entry %d (%q): %w", i, e.Title, err)
		}
		logger.DebugContext(ctx, "seeded todo", slog.String("id", created.ID))
	}

	logger.InfoContext(ctx, "seed loaded", slog.Int("count", len(f.Todos)))
	return len(f.Todos), nil
}
