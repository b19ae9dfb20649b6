package client

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"todo-tracker/internal/domain"
)

func sampleTask(id int64, name string) domain.Task {
	return domain.Task{
		ID:        id,
		Name:      name,
		Status:    domain.StatusPending,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func ids(tasks []domain.Task) []int64 {
	out := make([]int64, len(tasks))
	for i, task := range tasks {
		out[i] = task.ID
	}
	return out
}

func TestReduce_Refreshed(t *testing.T) {
	s := State{Tasks: []domain.Task{sampleTask(1, "old")}, LastError: stderrors.New("boom")}

	next := Reduce(s, Refreshed{Tasks: []domain.Task{sampleTask(3, "c"), sampleTask(2, "b")}})

	assert.Equal(t, []int64{3, 2}, ids(next.Tasks))
	assert.NoError(t, next.LastError)
	assert.Equal(t, []int64{1}, ids(s.Tasks), "input state must not change")
}

func TestReduce_CreatedAppends(t *testing.T) {
	s := State{Tasks: []domain.Task{sampleTask(5, "a")}}

	next := Reduce(s, Created{Task: sampleTask(2, "b")})

	assert.Equal(t, []int64{5, 2}, ids(next.Tasks))
	assert.Len(t, s.Tasks, 1)
}

func TestReduce_EditSession(t *testing.T) {
	first := sampleTask(1, "first")
	second := sampleTask(2, "second")

	s := Reduce(State{}, EditBegun{Task: first})
	require.NotNil(t, s.Editing)
	assert.Equal(t, int64(1), s.Editing.ID)
	assert.Equal(t, "first", s.Editing.Draft.Name)

	s = Reduce(s, DraftChanged{Draft: domain.Draft{Name: "changed", Status: domain.StatusDone}})
	assert.Equal(t, "changed", s.Editing.Draft.Name)

	// A second BeginEdit abandons the first draft without merging.
	s = Reduce(s, EditBegun{Task: second})
	assert.True(t, s.IsEditing(2))
	assert.False(t, s.IsEditing(1))
	assert.Equal(t, "second", s.Editing.Draft.Name)
	assert.Equal(t, domain.StatusPending, s.Editing.Draft.Status)

	s = Reduce(s, EditCancelled{})
	assert.Nil(t, s.Editing)
}

func TestReduce_DraftChangedWhileIdle(t *testing.T) {
	next := Reduce(State{}, DraftChanged{Draft: domain.Draft{Name: "x"}})

	assert.Nil(t, next.Editing)
	assert.ErrorIs(t, next.LastError, ErrNotEditing)
}

func TestReduce_Saved(t *testing.T) {
	tasks := []domain.Task{sampleTask(1, "a"), sampleTask(2, "b"), sampleTask(3, "c")}

	t.Run("replaces by id and ends the session", func(t *testing.T) {
		s := Reduce(State{Tasks: tasks}, EditBegun{Task: tasks[1]})
		updated := tasks[1]
		updated.Name = "B"
		updated.Status = domain.StatusDone

		next := Reduce(s, Saved{Task: updated})

		assert.Equal(t, []int64{1, 2, 3}, ids(next.Tasks))
		assert.Equal(t, "B", next.Tasks[1].Name)
		assert.Nil(t, next.Editing)
	})

	t.Run("keeps an unrelated session", func(t *testing.T) {
		s := Reduce(State{Tasks: tasks}, EditBegun{Task: tasks[0]})
		updated := tasks[2]
		updated.Name = "C"

		next := Reduce(s, Saved{Task: updated})

		assert.Equal(t, "C", next.Tasks[2].Name)
		assert.True(t, next.IsEditing(1))
	})

	t.Run("ignores an uncached id", func(t *testing.T) {
		next := Reduce(State{Tasks: tasks}, Saved{Task: sampleTask(9, "z")})
		assert.Equal(t, []int64{1, 2, 3}, ids(next.Tasks))
	})
}

func TestReduce_Deleted(t *testing.T) {
	tasks := []domain.Task{sampleTask(1, "a"), sampleTask(2, "b"), sampleTask(3, "c")}
	s := Reduce(State{Tasks: tasks}, EditBegun{Task: tasks[1]})

	next := Reduce(s, Deleted{ID: 2})

	assert.Equal(t, []int64{1, 3}, ids(next.Tasks))
	assert.Nil(t, next.Editing)
	assert.Equal(t, []int64{1, 2, 3}, ids(s.Tasks), "input state must not change")

	other := Reduce(Reduce(State{Tasks: tasks}, EditBegun{Task: tasks[0]}), Deleted{ID: 3})
	assert.True(t, other.IsEditing(1))
}

func TestReduce_FailedKeepsState(t *testing.T) {
	tasks := []domain.Task{sampleTask(1, "a")}
	s := Reduce(State{Tasks: tasks}, EditBegun{Task: tasks[0]})
	s = Reduce(s, DraftChanged{Draft: domain.Draft{Name: ""}})
	cause := stderrors.New("server down")

	next := Reduce(s, Failed{Op: OpSave, Err: cause})

	assert.Equal(t, s.Tasks, next.Tasks)
	require.NotNil(t, next.Editing)
	assert.Equal(t, "", next.Editing.Draft.Name)
	assert.ErrorIs(t, next.LastError, cause)
}

func TestReduce_DeleteDeclinedChangesNothing(t *testing.T) {
	s := State{Tasks: []domain.Task{sampleTask(1, "a")}}
	assert.Equal(t, s, Reduce(s, DeleteDeclined{ID: 1}))
}

func TestState_CloneIsDeep(t *testing.T) {
	task := sampleTask(1, "a")
	task.Description = domain.StringPtr("desc")
	s := Reduce(State{Tasks: []domain.Task{task}}, EditBegun{Task: task})

	c := s.Clone()
	*c.Tasks[0].Description = "changed"
	*c.Editing.Draft.Description = "changed"
	c.Editing.ID = 42

	assert.Equal(t, "desc", *s.Tasks[0].Description)
	assert.Equal(t, "desc", *s.Editing.Draft.Description)
	assert.Equal(t, int64(1), s.Editing.ID)
}

// The reducer never reorders the tasks it keeps: after any sequence of
// events the surviving ids appear in the order they were first seen.
func TestReduce_NeverReorders(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var s State
		var order []int64
		nextID := int64(1)

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			kind := rapid.SampledFrom([]string{"create", "save", "delete", "edit", "fail"}).Draw(rt, "event")
			if kind != "create" && kind != "fail" && len(s.Tasks) == 0 {
				continue
			}

			var ev Event
			switch kind {
			case "create":
				ev = Created{Task: sampleTask(nextID, "t")}
				order = append(order, nextID)
				nextID++
			case "save":
				target := s.Tasks[rapid.IntRange(0, len(s.Tasks)-1).Draw(rt, "index")]
				target.Status = domain.StatusDone
				ev = Saved{Task: target}
			case "delete":
				target := s.Tasks[rapid.IntRange(0, len(s.Tasks)-1).Draw(rt, "index")]
				ev = Deleted{ID: target.ID}
			case "edit":
				target := s.Tasks[rapid.IntRange(0, len(s.Tasks)-1).Draw(rt, "index")]
				ev = EditBegun{Task: target}
			case "fail":
				ev = Failed{Op: OpRefresh, Err: stderrors.New("x")}
			}
			s = Reduce(s, ev)
		}

		pos := make(map[int64]int, len(order))
		for i, id := range order {
			pos[id] = i
		}
		for i := 1; i < len(s.Tasks); i++ {
			if pos[s.Tasks[i-1].ID] >= pos[s.Tasks[i].ID] {
				rt.Fatalf("tasks reordered: %v", ids(s.Tasks))
			}
		}
		if s.Editing != nil {
			if _, ok := s.Find(s.Editing.ID); !ok {
				rt.Fatalf("editing task %d is not cached", s.Editing.ID)
			}
		}
	})
}
