package dto_test

import (
	"errors"
	"testing"

	"github.com/acclimations/todo-backend/internal/adapters/http/dto"
	"github.com/acclimations/todo-backend/internal/domain"
)

func boolPtr(b bool) *bool { return &b }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "title only passes",
			req:     dto.CreateTodoRequest{Title: "Buy milk"},
			wantErr: false,
		},
		{
			name: "all fields pass",
			req: dto.CreateTodoRequest{
				Title:       "Buy milk",
				Description: "2%",
				Completed:   boolPtr(true),
				Tags:        []string{"a", "b", "c", "d", "e"},
			},
			wantErr: false,
		},
		{
			name:      "empty title fails",
			req:       dto.CreateTodoRequest{Title: ""},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "whitespace-only title fails",
			req:       dto.CreateTodoRequest{Title: "   "},
			wantErr:   true,
			wantField: "title",
		},
		{
			name: "six tags fail",
			req: dto.CreateTodoRequest{
				Title: "Too many",
				Tags:  []string{"a", "b", "c", "d", "e", "f"},
			},
			wantErr:   true,
			wantField: "tags",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateTodoRequest_ValidateCollectsAllFields(t *testing.T) {
	t.Parallel()

	req := dto.CreateTodoRequest{Tags: []string{"1", "2", "3", "4", "5", "6"}}
	err := req.Validate()

	requireValidationField(t, err, "title")
	requireValidationField(t, err, "tags")
}

func TestUpdateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "title and completed pass",
			req:     dto.UpdateTodoRequest{Title: "X", Completed: boolPtr(false)},
			wantErr: false,
		},
		{
			name:      "missing completed fails",
			req:       dto.UpdateTodoRequest{Title: "X"},
			wantErr:   true,
			wantField: "completed",
		},
		{
			name:      "blank title fails",
			req:       dto.UpdateTodoRequest{Title: "\t", Completed: boolPtr(true)},
			wantErr:   true,
			wantField: "title",
		},
		{
			name: "six tags fail",
			req: dto.UpdateTodoRequest{
				Title:     "X",
				Completed: boolPtr(true),
				Tags:      []string{"a", "b", "c", "d", "e", "f"},
			},
			wantErr:   true,
			wantField: "tags",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateTodoRequest_ToInput(t *testing.T) {
	t.Parallel()

	req := dto.CreateTodoRequest{
		Title:       "Buy milk",
		Description: "2%",
		Completed:   boolPtr(true),
		Tags:        []string{"home"},
	}
	in := req.ToInput()

	if in.Title != "Buy milk" || in.Description != "2%" {
		t.Errorf("ToInput() = %+v, want title and description copied", in)
	}
	if in.Completed == nil || !*in.Completed {
		t.Errorf("Completed = %v, want true", in.Completed)
	}
	if len(in.Tags) != 1 || in.Tags[0] != "home" {
		t.Errorf("Tags = %v, want [home]", in.Tags)
	}
}

func TestCreateTodoRequest_ToInputLeavesCompletedUnset(t *testing.T) {
	t.Parallel()

	req := dto.CreateTodoRequest{Title: "Buy milk"}
	if in := req.ToInput(); in.Completed != nil {
		t.Errorf("Completed = %v, want nil so the service applies its default", *in.Completed)
	}
}

func TestUpdateTodoRequest_ToInput(t *testing.T) {
	t.Parallel()

	req := dto.UpdateTodoRequest{Title: "X", Completed: boolPtr(false)}
	in := req.ToInput()

	if in.Title != "X" {
		t.Errorf("Title = %q, want X", in.Title)
	}
	if in.Completed == nil || *in.Completed {
		t.Errorf("Completed = %v, want false", in.Completed)
	}
	if in.Description != "" || in.Tags != nil {
		t.Errorf("ToInput() = %+v, want empty description and nil tags", in)
	}
}
