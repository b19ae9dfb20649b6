package services

import (
	"context"
	"fmt"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository/sqlite"
	"todo-tracker/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance with default validation limits
func NewTaskService(repo sqlite.Repository) TaskService {
	return NewTaskServiceWithValidator(repo, validation.NewTaskValidator())
}

// NewTaskServiceWithValidator creates a TaskService using the given validator
func NewTaskServiceWithValidator(repo sqlite.Repository, taskValidator *validation.TaskValidator) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: taskValidator,
	}
}

// validateDraft builds and validates the stored form of a create or update
func (t *taskServiceImpl) validateDraft(name string, description *string, status *domain.Status) (domain.Draft, error) {
	draft := domain.Draft{
		Name:        name,
		Description: description,
		Status:      domain.DefaultStatus,
	}
	if status != nil {
		draft.Status = *status
	}

	cleaned, err := t.taskValidator.ValidateDraft(draft)
	if err != nil {
		return domain.Draft{}, errors.NewValidationError("invalid task", err)
	}
	return cleaned, nil
}

// CreateTask creates a new task
func (t *taskServiceImpl) CreateTask(ctx context.Context, name string, description *string, status *domain.Status) (*domain.Task, error) {
	draft, err := t.validateDraft(name, description, status)
	if err != nil {
		return nil, err
	}

	dbTask, err := t.repo.Insert(ctx, t.mapper.Task.DraftToFields(draft))
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if id <= 0 {
		return nil, taskNotFound(id)
	}

	dbTask, err := t.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// ListTasks returns every task in insertion order
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	dbTasks, err := t.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// UpdateTask replaces the name, description and status of a task.
// Input is validated before the id is looked up.
func (t *taskServiceImpl) UpdateTask(ctx context.Context, id int64, name string, description *string, status *domain.Status) (*domain.Task, error) {
	draft, err := t.validateDraft(name, description, status)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, taskNotFound(id)
	}

	dbTask, err := t.repo.Replace(ctx, id, t.mapper.Task.DraftToFields(draft))
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// DeleteTask removes a task and returns it as it was before removal
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := t.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := t.repo.Remove(ctx, id); err != nil {
		return nil, err
	}

	return task, nil
}

func taskNotFound(id int64) error {
	return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
}
