package client

import "todo-tracker/internal/domain"

// Reduce returns the state that follows s after ev. It never modifies s and
// never reorders tasks: only Refreshed replaces the sequence.
func Reduce(s State, ev Event) State {
	next := s.Clone()

	switch e := ev.(type) {
	case Refreshed:
		next.Tasks = cloneTasks(e.Tasks)
		next.LastError = nil

	case Created:
		next.Tasks = append(next.Tasks, cloneTasks([]domain.Task{e.Task})...)
		next.LastError = nil

	case EditBegun:
		next.Editing = &EditSession{ID: e.Task.ID, Draft: e.Task.Draft()}
		next.LastError = nil

	case DraftChanged:
		if next.Editing == nil {
			next.LastError = ErrNotEditing
			break
		}
		next.Editing.Draft = cloneDraft(e.Draft)
		next.LastError = nil

	case EditCancelled:
		next.Editing = nil
		next.LastError = nil

	case Saved:
		for i := range next.Tasks {
			if next.Tasks[i].ID == e.Task.ID {
				next.Tasks[i] = cloneTasks([]domain.Task{e.Task})[0]
				break
			}
		}
		if next.IsEditing(e.Task.ID) {
			next.Editing = nil
		}
		next.LastError = nil

	case Deleted:
		kept := next.Tasks[:0]
		for _, task := range next.Tasks {
			if task.ID != e.ID {
				kept = append(kept, task)
			}
		}
		next.Tasks = kept
		if next.IsEditing(e.ID) {
			next.Editing = nil
		}
		next.LastError = nil

	case DeleteDeclined:
		return s

	case Failed:
		next.LastError = e.Err
	}

	return next
}
