package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, dir string, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(WithOutput(&out), WithInput(strings.NewReader(input)))
	root.SetArgs(append([]string{"--db-dir", dir}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_TaskLifecycle(t *testing.T) {
	dir := t.TempDir()

	out, err := runRoot(t, dir, "", "add", "Buy", "milk", "-d", "2%")
	require.NoError(t, err)
	assert.Equal(t, "Added task 1: Buy milk [pending]\n", out)

	out, err = runRoot(t, dir, "", "add", "Empty", "--description", "", "-s", "in-progress")
	require.NoError(t, err)
	assert.Equal(t, "Added task 2: Empty [in-progress]\n", out)

	out, err = runRoot(t, dir, "", "update-status", "1", "done")
	require.NoError(t, err)
	assert.Equal(t, "Task 1 is now done\n", out)

	out, err = runRoot(t, dir, "", "export", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"description": "2%"`)
	assert.Contains(t, out, `"description": ""`)
	assert.Contains(t, out, `"status": "done"`)

	out, err = runRoot(t, dir, "", "export", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "status: done")

	out, err = runRoot(t, dir, "n\n", "remove", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Delete cancelled.")

	out, err = runRoot(t, dir, "", "remove", "2", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "Deleted task 2: Empty\n", out)

	out, err = runRoot(t, dir, "", "summary")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^Total\s+1$`, out)

	_, err = os.Stat(filepath.Join(dir, "todo.db"))
	assert.NoError(t, err)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("database:\n  filename: custom.db\nvalidation:\n  task_name_max_length: 5\n"), 0644))

	var out bytes.Buffer
	root := NewRootCommand(WithOutput(&out))
	root.SetArgs([]string{"--config", configPath, "--db-dir", dir, "add", "toolong"})
	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 5")
	_, statErr := os.Stat(filepath.Join(dir, "custom.db"))
	assert.NoError(t, statErr)
}

func TestRootCommand_MissingConfigFile(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "list"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestRootCommand_ArgumentChecks(t *testing.T) {
	dir := t.TempDir()

	_, err := runRoot(t, dir, "", "update-status", "1")
	assert.Error(t, err)

	_, err = runRoot(t, dir, "", "add")
	assert.Error(t, err)

	_, err = runRoot(t, dir, "", "export", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestRootCommand_DatabaseRollback(t *testing.T) {
	dir := t.TempDir()

	rollback := func() string {
		var out bytes.Buffer
		root := NewRootCommand()
		root.cmd.SetOut(&out)
		root.SetArgs([]string{"--db-dir", dir, "db", "rollback"})
		require.NoError(t, root.Execute())
		return out.String()
	}

	assert.Equal(t, "No migrations to roll back.\n", rollback())

	_, err := runRoot(t, dir, "", "add", "Soon gone")
	require.NoError(t, err)

	assert.Equal(t, "Rolled back migration 1.\n", rollback())
	assert.Equal(t, "No migrations to roll back.\n", rollback())

	out, err := runRoot(t, dir, "", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Soon gone")
}

func TestRootCommand_ParsesIDsAndStatuses(t *testing.T) {
	dir := t.TempDir()
	_, err := runRoot(t, dir, "", "add", "Task")
	require.NoError(t, err)

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"zero id", []string{"remove", "0", "--yes"}, "task_id"},
		{"negative id", []string{"update-status", "--", "-1", "done"}, "task_id"},
		{"overflowing id", []string{"remove", "99999999999999999999", "--yes"}, "out of range"},
		{"unknown status flag", []string{"add", "Other", "-s", "finished"}, "status"},
		{"unknown status argument", []string{"update-status", "1", "testing"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRoot(t, dir, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	out, err := runRoot(t, dir, "", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Other")
}
