package api

import (
	"time"

	"todo-tracker/internal/domain"
)

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID          int64   `json:"id" yaml:"id"`
	TaskName    string  `json:"task_name" yaml:"task_name"`
	Description *string `json:"description" yaml:"description"`
	Status      string  `json:"status" yaml:"status"`
	DateAdded   string  `json:"date_added" yaml:"date_added"`
}

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	TaskName    string  `json:"task_name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// UpdateTaskRequest is the body of PUT /tasks/{id}. Every mutable field is
// replaced, so an omitted description clears the stored one.
type UpdateTaskRequest struct {
	TaskName    string  `json:"task_name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewTaskResponse converts a domain task to its wire form.
func NewTaskResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		TaskName:    task.Name,
		Description: domain.CloneString(task.Description),
		Status:      string(task.Status),
		DateAdded:   task.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToDomain converts a wire task back to the domain model.
func (r TaskResponse) ToDomain() (domain.Task, error) {
	added, err := time.Parse(time.RFC3339, r.DateAdded)
	if err != nil {
		return domain.Task{}, err
	}
	status, err := domain.ParseStatus(r.Status)
	if err != nil {
		return domain.Task{}, err
	}
	return domain.Task{
		ID:          r.ID,
		Name:        r.TaskName,
		Description: domain.CloneString(r.Description),
		Status:      status,
		CreatedAt:   added,
	}, nil
}

// NewTaskResponses converts tasks in order.
func NewTaskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, NewTaskResponse(task))
	}
	return out
}

func statusFromWire(s *string) *domain.Status {
	if s == nil {
		return nil
	}
	status := domain.Status(*s)
	return &status
}
