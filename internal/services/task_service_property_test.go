package services

import (
	"context"
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository/sqlite"
)

func newPropertyService(rt *rapid.T) (TaskService, func()) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		rt.Fatalf("open store: %v", err)
	}
	return NewTaskService(repo), func() { repo.Close() }
}

func TestUpdateTask_BlankNameRejectedForEveryID(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		service, cleanup := newPropertyService(rt)
		defer cleanup()
		ctx := context.Background()

		n := rapid.IntRange(0, 5).Draw(rt, "num_tasks")
		for i := 0; i < n; i++ {
			if _, err := service.CreateTask(ctx, fmt.Sprintf("task %d", i), nil, nil); err != nil {
				rt.Fatalf("create: %v", err)
			}
		}

		id := rapid.Int64Range(-10, 20).Draw(rt, "id")
		blank := rapid.StringMatching(`[ \t\n]{0,8}`).Draw(rt, "blank")

		if _, err := service.UpdateTask(ctx, id, blank, nil, nil); !errors.IsValidation(err) {
			rt.Fatalf("UpdateTask(%d, %q) = %v, expected validation error", id, blank, err)
		}
		if _, err := service.CreateTask(ctx, blank, nil, nil); !errors.IsValidation(err) {
			rt.Fatalf("CreateTask(%q) = %v, expected validation error", blank, err)
		}
	})
}

func TestCreateTask_RoundTripsThroughGet(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		service, cleanup := newPropertyService(rt)
		defer cleanup()
		ctx := context.Background()

		pad := rapid.StringMatching(`[ \t]{0,3}`).Draw(rt, "pad")
		name := pad + rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 ]{0,40}`).Draw(rt, "name")
		var description *string
		if rapid.Bool().Draw(rt, "has_description") {
			description = domain.StringPtr(rapid.StringMatching(`[a-z %]{0,30}`).Draw(rt, "description"))
		}
		status := rapid.SampledFrom(domain.Statuses()).Draw(rt, "status")

		created, err := service.CreateTask(ctx, name, description, &status)
		if err != nil {
			rt.Fatalf("create: %v", err)
		}

		got, err := service.GetTask(ctx, created.ID)
		if err != nil {
			rt.Fatalf("get: %v", err)
		}
		if got.Name != name || created.Name != name || got.Status != status || !got.CreatedAt.Equal(created.CreatedAt) {
			rt.Fatalf("round trip mismatch: created %+v, got %+v", created, got)
		}
		if (description == nil) != (got.Description == nil) {
			rt.Fatalf("description presence changed: sent %v, got %v", description, got.Description)
		}
		if description != nil && *description != *got.Description {
			rt.Fatalf("description changed: sent %q, got %q", *description, *got.Description)
		}
	})
}

func TestMissingIDs_AreNotFound(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		service, cleanup := newPropertyService(rt)
		defer cleanup()
		ctx := context.Background()

		live := make(map[int64]bool)
		n := rapid.IntRange(0, 8).Draw(rt, "num_tasks")
		for i := 0; i < n; i++ {
			task, err := service.CreateTask(ctx, fmt.Sprintf("task %d", i), nil, nil)
			if err != nil {
				rt.Fatalf("create: %v", err)
			}
			live[task.ID] = true
			if rapid.Bool().Draw(rt, fmt.Sprintf("delete_%d", i)) {
				if _, err := service.DeleteTask(ctx, task.ID); err != nil {
					rt.Fatalf("delete: %v", err)
				}
				delete(live, task.ID)
			}
		}

		id := rapid.Int64Range(-5, 30).Draw(rt, "id")
		if live[id] {
			return
		}
		if _, err := service.UpdateTask(ctx, id, "x", nil, nil); !errors.IsNotFound(err) {
			rt.Fatalf("UpdateTask(%d) = %v, expected not found", id, err)
		}
		if _, err := service.DeleteTask(ctx, id); !errors.IsNotFound(err) {
			rt.Fatalf("DeleteTask(%d) = %v, expected not found", id, err)
		}
	})
}
