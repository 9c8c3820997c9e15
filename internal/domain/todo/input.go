package todo

import (
	"strings"

	"github.com/acclimations/todo-backend/internal/domain"
)

// CreateInput carries the fields accepted when creating a Todo.
// A nil Completed means "not specified" and defaults to false.
type CreateInput struct {
	Title       string
	Description string
	Completed   *bool
	Tags        []string
}

// Validate checks the create payload.
// Returns a *domain.ValidationError if any checks fail.
func (in *CreateInput) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if msg, ok := checkTags(in.Tags); !ok {
		fields["tags"] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateInput is a full replacement payload. Title and Completed are
// required. An empty Description or nil Tags clears the stored value.
type UpdateInput struct {
	Title       string
	Description string
	Completed   *bool
	Tags        []string
}

// Validate checks the update payload.
// Returns a *domain.ValidationError if any checks fail.
func (in *UpdateInput) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if in.Completed == nil {
		fields["completed"] = domain.MsgRequired
	}
	if msg, ok := checkTags(in.Tags); !ok {
		fields["tags"] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
