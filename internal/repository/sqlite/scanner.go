package sqlite

import (
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// taskColumns is the column order expected by ScanTask.
var taskColumns = []string{"id", "task_name", "description", "status", "date_added"}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var dateAdded string

	err := scanner.Scan(
		&task.ID,
		&task.TaskName,
		&task.Description,
		&task.Status,
		&dateAdded,
	)
	if err != nil {
		return nil, err
	}

	task.DateAdded, err = ParseTimeFromDB(dateAdded)
	if err != nil {
		return nil, fmt.Errorf("parse date_added for task %d: %w", task.ID, err)
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	tasks := make([]*Task, 0)
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
