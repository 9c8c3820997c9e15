package dto

import (
	"fmt"
	"strings"

	"github.com/acclimations/todo-backend/internal/domain"
	"github.com/acclimations/todo-backend/internal/domain/todo"
)

// CreateTodoRequest is the POST body. An omitted completed flag means false.
type CreateTodoRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Completed   *bool    `json:"completed,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Validate reports every shape problem at once as a *domain.ValidationError.
func (r *CreateTodoRequest) Validate() error {
	var c shapeCheck
	c.title(r.Title)
	c.tags(r.Tags)
	return c.err()
}

// ToInput maps the body onto the service input.
func (r *CreateTodoRequest) ToInput() todo.CreateInput {
	return todo.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Tags:        r.Tags,
	}
}

// UpdateTodoRequest is the PUT body. It replaces the whole todo, so title and
// completed must be sent and a missing description or tag list clears it.
type UpdateTodoRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Completed   *bool    `json:"completed"`
	Tags        []string `json:"tags,omitempty"`
}

// Validate reports every shape problem at once as a *domain.ValidationError.
func (r *UpdateTodoRequest) Validate() error {
	var c shapeCheck
	c.title(r.Title)
	if r.Completed == nil {
		c.reject("completed", domain.MsgRequired)
	}
	c.tags(r.Tags)
	return c.err()
}

// ToInput maps the body onto the service input.
func (r *UpdateTodoRequest) ToInput() todo.UpdateInput {
	return todo.UpdateInput{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Tags:        r.Tags,
	}
}

// shapeCheck collects rejected fields before the body reaches the service.
type shapeCheck struct {
	fields map[string]string
}

func (c *shapeCheck) reject(field, msg string) {
	if c.fields == nil {
		c.fields = make(map[string]string)
	}
	c.fields[field] = msg
}

func (c *shapeCheck) title(title string) {
	if strings.TrimSpace(title) == "" {
		c.reject("title", domain.MsgRequired)
	}
}

func (c *shapeCheck) tags(tags []string) {
	if len(tags) > todo.MaxTags {
		c.reject("tags", fmt.Sprintf("must contain at most %d tags, got %d", todo.MaxTags, len(tags)))
	}
}

func (c *shapeCheck) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: c.fields}
}
