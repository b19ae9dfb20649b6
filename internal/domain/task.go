package domain

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// DefaultStatus is assigned when a create or update leaves the status unset.
const DefaultStatus = StatusPending

// Statuses lists every valid status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusDone}
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// String returns the wire form of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a wire string into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return status, nil
}

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64
	Name        string
	Description *string // nil means absent, distinct from ""
	Status      Status
	CreatedAt   time.Time
}

// Draft holds the mutable fields of a task: the payload of a create or a
// full-replace update, and the unsaved edits held by a client.
type Draft struct {
	Name        string
	Description *string
	Status      Status
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != "" && t.Status.IsValid()
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}

// Draft returns the task's mutable fields, used to seed an edit.
func (t Task) Draft() Draft {
	return Draft{
		Name:        t.Name,
		Description: CloneString(t.Description),
		Status:      t.Status,
	}
}

// DescriptionOr returns the description, or fallback when it is absent.
func (t Task) DescriptionOr(fallback string) string {
	if t.Description == nil {
		return fallback
	}
	return *t.Description
}

// DescriptionOr returns the draft's description, or fallback when it is absent.
func (d Draft) DescriptionOr(fallback string) string {
	if d.Description == nil {
		return fallback
	}
	return *d.Description
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// CloneString copies an optional string so callers never share storage.
func CloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
