package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/acclimations/todo-backend/internal/adapters/http/dto"
	"github.com/acclimations/todo-backend/internal/domain/todo"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 123456789, time.UTC)

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          "6f1c1c4e-9d0a-4c43-8a0e-2f7f3b7f0c11",
		Title:       "Buy milk",
		Description: "2%",
		Completed:   false,
		Tags:        []string{"home", "errands"},
		CreatedAt:   testTime,
		UpdatedAt:   testTime.Add(time.Minute),
	}
}

func TestToTodoResponse(t *testing.T) {
	t.Parallel()

	td := validTodo()
	got := dto.ToTodoResponse(&td)

	if got.ID != td.ID {
		t.Errorf("ID = %q, want %q", got.ID, td.ID)
	}
	if got.Title != "Buy milk" || got.Description != "2%" || got.Completed {
		t.Errorf("ToTodoResponse() = %+v, want fields copied", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "home" || got.Tags[1] != "errands" {
		t.Errorf("Tags = %v, want [home errands]", got.Tags)
	}
	if got.CreatedAt != "2026-02-12T15:04:05.123456789Z" {
		t.Errorf("CreatedAt = %q, want RFC3339Nano", got.CreatedAt)
	}
	if got.UpdatedAt != "2026-02-12T15:05:05.123456789Z" {
		t.Errorf("UpdatedAt = %q, want RFC3339Nano", got.UpdatedAt)
	}
}

func TestToTodoResponse_TagsNeverNull(t *testing.T) {
	t.Parallel()

	td := validTodo()
	td.Tags = nil

	body, err := json.Marshal(dto.ToTodoResponse(&td))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	tags, ok := raw["tags"].([]any)
	if !ok {
		t.Fatalf("tags = %#v, want JSON array", raw["tags"])
	}
	if len(tags) != 0 {
		t.Errorf("len(tags) = %d, want 0", len(tags))
	}
}

func TestToTodoResponse_DoesNotAliasTags(t *testing.T) {
	t.Parallel()

	td := validTodo()
	got := dto.ToTodoResponse(&td)
	got.Tags[0] = "changed"

	if td.Tags[0] != "home" {
		t.Errorf("source Tags[0] = %q, want home", td.Tags[0])
	}
}

func TestToTodoResponse_JSONFieldNames(t *testing.T) {
	t.Parallel()

	td := validTodo()
	body, err := json.Marshal(dto.ToTodoResponse(&td))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	for _, key := range []string{"id", "title", "description", "completed", "tags", "createdAt", "updatedAt"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("JSON missing key %q: %s", key, body)
		}
	}
}

func TestToTodoList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		todos    []todo.Todo
		wantJSON string
	}{
		{name: "nil slice", todos: nil, wantJSON: "[]"},
		{name: "empty slice", todos: []todo.Todo{}, wantJSON: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body, err := json.Marshal(dto.ToTodoList(tt.todos))
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			if string(body) != tt.wantJSON {
				t.Errorf("body = %s, want %s", body, tt.wantJSON)
			}
		})
	}
}

func TestToTodoList_BareArrayInOrder(t *testing.T) {
	t.Parallel()

	first, second := validTodo(), validTodo()
	second.ID = "second"

	body, err := json.Marshal(dto.ToTodoList([]todo.Todo{first, second}))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("body %s is not a JSON array: %v", body, err)
	}
	if len(items) != 2 || items[0]["id"] != first.ID || items[1]["id"] != "second" {
		t.Errorf("items = %v, want both todos in order", items)
	}
}
