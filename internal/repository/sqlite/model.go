package sqlite

import (
	"database/sql"
	"time"
)

// Task is a row of the tasks table.
type Task struct {
	ID          int64
	TaskName    string
	Description sql.NullString // NULL when the task has no description
	Status      string
	DateAdded   time.Time
}

// TaskFields holds the mutable columns written by Insert and Replace.
type TaskFields struct {
	TaskName    string
	Description sql.NullString
	Status      string
}
