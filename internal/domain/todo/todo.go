// Package todo defines the Todo entity, its invariants, and the inputs
// accepted by the create and update operations.
package todo

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/acclimations/todo-backend/internal/domain"
)

// MaxTags is the maximum number of tags a Todo may carry.
const MaxTags = 5

// Todo represents a task item with a completion flag and ordered tags.
type Todo struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if msg, ok := checkTags(t.Tags); !ok {
		fields["tags"] = msg
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		fields["updated_at"] = "must not be before created_at"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SetCompleted sets the completion flag and refreshes UpdatedAt.
func (t *Todo) SetCompleted(completed bool, now time.Time) {
	t.Completed = completed
	t.touch(now)
}

// SetTags replaces the tag list and refreshes UpdatedAt. A nil slice clears
// the tags. More than MaxTags tags is rejected with a *domain.ValidationError
// and the Todo is left unchanged.
func (t *Todo) SetTags(tags []string, now time.Time) error {
	if msg, ok := checkTags(tags); !ok {
		return &domain.ValidationError{Fields: map[string]string{"tags": msg}}
	}
	t.Tags = cloneTags(tags)
	t.touch(now)
	return nil
}

// Clone returns a deep copy of the Todo. The tag slice of the copy never
// shares a backing array with the original.
func (t *Todo) Clone() Todo {
	c := *t
	c.Tags = cloneTags(t.Tags)
	return c
}

// touch bumps UpdatedAt, never letting it fall behind CreatedAt.
func (t *Todo) touch(now time.Time) {
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.UpdatedAt = now
}

func checkTags(tags []string) (string, bool) {
	if len(tags) > MaxTags {
		return fmt.Sprintf("must contain at most %d tags, got %d", MaxTags, len(tags)), false
	}
	return "", true
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}
