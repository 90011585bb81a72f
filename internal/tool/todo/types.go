package todo

import (
	"github.com/autocode-agent/autocode/internal/config"
)

// TodoStatus represents the status of a todo item.
type TodoStatus string

const (
	TodoStatusPending    TodoStatus = "pending"
	TodoStatusInProgress TodoStatus = "in_progress"
	TodoStatusCompleted  TodoStatus = "completed"
	TodoStatusCancelled  TodoStatus = "cancelled"
)

// Todo represents a single task item.
type Todo struct {
	Description string     `json:"description"`
	Status      TodoStatus `json:"status"`
}

// ReadTodosRequest has no parameters.
type ReadTodosRequest struct{}

func (r *ReadTodosRequest) Validate(cfg *config.Config) error {
	return nil
}

// ReadTodosResponse contains the list of current todos.
type ReadTodosResponse struct {
	Todos []Todo `json:"todos"`
}

// WriteTodosRequest replaces the full todo list.
type WriteTodosRequest struct {
	Todos []Todo `json:"todos"`
}

func (r *WriteTodosRequest) Validate(cfg *config.Config) error {
	for i, todo := range r.Todos {
		switch todo.Status {
		case TodoStatusPending, TodoStatusInProgress, TodoStatusCompleted, TodoStatusCancelled:
		default:
			return &InvalidStatusError{Index: i, Status: todo.Status}
		}
		if todo.Description == "" {
			return &EmptyDescriptionError{Index: i}
		}
	}
	return nil
}

// WriteTodosResponse contains the result of a write operation.
type WriteTodosResponse struct {
	Count int `json:"count"`
}
