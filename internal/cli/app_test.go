package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/validation"
)

// setupTestApp creates an App over an in-memory database, capturing output.
func setupTestApp(t *testing.T, opts ...AppOption) (*App, *bytes.Buffer) {
	t.Helper()
	repo, err := config.CreateTestRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	out := &bytes.Buffer{}
	opts = append([]AppOption{WithOutput(out), WithInput(strings.NewReader(""))}, opts...)
	return NewApp(NewServiceContainer(repo, validation.NewTaskValidator()), opts...), out
}

func addTask(t *testing.T, app *App, name string) *domain.Task {
	t.Helper()
	task, err := app.services.TaskService.CreateTask(context.Background(), name, nil, nil)
	require.NoError(t, err)
	return task
}

func TestApp_Run(t *testing.T) {
	app, out := setupTestApp(t)
	ctx := context.Background()

	t.Run("requires a command", func(t *testing.T) {
		err := app.Run(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: todo")
	})

	t.Run("rejects unknown command", func(t *testing.T) {
		err := app.Run(ctx, []string{"start"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})

	t.Run("dispatches to registered commands", func(t *testing.T) {
		out.Reset()
		require.NoError(t, app.Run(ctx, []string{"add", "Buy", "milk"}))
		assert.Equal(t, "Added task 1: Buy milk [pending]\n", out.String())

		out.Reset()
		require.NoError(t, app.Run(ctx, []string{"export", "json"}))
		assert.Contains(t, out.String(), `"task_name": "Buy milk"`)
	})

	t.Run("uses options set on the registered command", func(t *testing.T) {
		command, ok := app.Command("add")
		require.True(t, ok)
		command.(*AddCommand).Status = "done"

		out.Reset()
		require.NoError(t, app.Run(ctx, []string{"add", "Paid"}))
		assert.Equal(t, "Added task 2: Paid [done]\n", out.String())
	})
}

func TestApp_ParseTaskIDUsesValidator(t *testing.T) {
	app, _ := setupTestApp(t)

	id, err := app.parseTaskID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = app.parseTaskID("0")
	assert.True(t, errors.IsValidation(err))

	_, err = app.parseTaskID("99999999999999999999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	_, err = app.parseTaskID("abc")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestPromptConfirmer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "yes", input: "y\n", expected: true},
		{name: "full yes with spaces", input: "  YES \n", expected: true},
		{name: "no", input: "n\n", expected: false},
		{name: "empty line", input: "\n", expected: false},
		{name: "no input", input: "", expected: false},
		{name: "yes without newline", input: "y", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			confirm := promptConfirmer(strings.NewReader(tt.input), &out)

			got := confirm.Confirm(domain.Task{ID: 4, Name: "Buy milk"})

			assert.Equal(t, tt.expected, got)
			assert.Equal(t, `Delete task 4 "Buy milk"? [y/N]: `, out.String())
		})
	}
}
