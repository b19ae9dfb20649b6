package services

import (
	"context"

	"todo-tracker/internal/domain"
)

// StatusCount is the number of tasks in one status
type StatusCount struct {
	Status domain.Status `json:"status" yaml:"status"`
	Count  int           `json:"count" yaml:"count"`
}

// StatusSummary counts tasks per status, in display order
type StatusSummary struct {
	Total    int           `json:"total" yaml:"total"`
	ByStatus []StatusCount `json:"by_status" yaml:"by_status"`
}

// Count returns the number of tasks with the given status
func (s *StatusSummary) Count(status domain.Status) int {
	for _, c := range s.ByStatus {
		if c.Status == status {
			return c.Count
		}
	}
	return 0
}

// TaskService handles task lifecycle operations.
//
// A nil description is stored as absent. A nil status means pending, on
// update as well as on create: updates replace every mutable field.
type TaskService interface {
	CreateTask(ctx context.Context, name string, description *string, status *domain.Status) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id int64, name string, description *string, status *domain.Status) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) (*domain.Task, error)
}

// ReportingService handles aggregate views over the task list
type ReportingService interface {
	Summarize(ctx context.Context) (*StatusSummary, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService      TaskService
	ReportingService ReportingService
}
