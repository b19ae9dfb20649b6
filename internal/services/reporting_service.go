package services

import (
	"context"

	"todo-tracker/internal/domain"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	taskService TaskService
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(taskService TaskService) ReportingService {
	return &reportingServiceImpl{taskService: taskService}
}

// Summarize counts the stored tasks per status
func (r *reportingServiceImpl) Summarize(ctx context.Context) (*StatusSummary, error) {
	tasks, err := r.taskService.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return SummarizeTasks(tasks), nil
}

// SummarizeTasks counts tasks per status. Every known status is present,
// including those with no tasks.
func SummarizeTasks(tasks []domain.Task) *StatusSummary {
	counts := make(map[domain.Status]int, len(domain.Statuses()))
	for _, task := range tasks {
		counts[task.Status]++
	}

	summary := &StatusSummary{Total: len(tasks)}
	for _, status := range domain.Statuses() {
		summary.ByStatus = append(summary.ByStatus, StatusCount{Status: status, Count: counts[status]})
	}
	return summary
}
