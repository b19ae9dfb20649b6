package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	ve := validation.NewValidationError()
	ve.AddRequiredError("task_name")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation error inside app error",
			err:      errors.NewValidationError("invalid task", ve),
			expected: "failed to add task: task_name is required",
		},
		{
			name:     "bare validation error",
			err:      ve,
			expected: "failed to add task: task_name is required",
		},
		{
			name:     "not found",
			err:      errors.NewNotFoundError("task", "7"),
			expected: "failed to add task: task not found: 7",
		},
		{
			name:     "storage details are hidden",
			err:      errors.NewStorageError("insert task", stderrors.New("disk I/O error")),
			expected: "failed to add task: A storage error occurred. Please try again.",
		},
		{
			name:     "unknown error passes through",
			err:      stderrors.New("boom"),
			expected: "failed to add task: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := eh.Handle("add task", tt.err)
			assert.EqualError(t, err, tt.expected)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.NoError(t, eh.Handle("add task", nil))
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	ve := validation.NewValidationError()
	ve.AddRequiredError("task_name")

	assert.True(t, eh.IsValidationError(ve))
	assert.True(t, eh.IsValidationError(errors.NewValidationError("invalid", ve)))
	assert.True(t, eh.IsNotFoundError(errors.NewNotFoundError("task", "1")))
	assert.True(t, eh.IsStorageError(errors.NewStorageError("op", nil)))
	assert.False(t, eh.IsNotFoundError(stderrors.New("x")))
	assert.Equal(t, "NOT_FOUND", eh.GetErrorCode(errors.NewNotFoundError("task", "1")))
	assert.Equal(t, "UNKNOWN_ERROR", eh.GetErrorCode(stderrors.New("x")))
}
