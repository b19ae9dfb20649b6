package config

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"todo-tracker/internal/repository/sqlite"
)

func TestCreateRepository(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TODO_DATABASE_DIR", filepath.Join(tmpDir, "nested"))

	cfg, err := NewLoader().WithSearchPaths(tmpDir).Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	repo, err := CreateRepository(cfg)
	if err != nil {
		t.Fatalf("CreateRepository() error = %v", err)
	}
	defer repo.Close()

	task, err := repo.Insert(context.Background(), sqlite.TaskFields{
		TaskName:    "Test Task",
		Description: sql.NullString{},
		Status:      "pending",
	})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	tasks, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != task.ID {
		t.Errorf("ListAll() = %v, expected the inserted task", tasks)
	}
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	if err != nil {
		t.Fatalf("CreateTestRepository() error = %v", err)
	}
	defer repo.Close()

	tasks, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if tasks == nil {
		t.Error("ListAll() returned nil")
	}
}
