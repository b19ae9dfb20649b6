package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"todo-tracker/internal/errors"
)

const maxBodyBytes = 1 << 20

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.ListTasks(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, NewTaskResponses(tasks))
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	task, err := s.tasks.CreateTask(r.Context(), req.TaskName, req.Description, statusFromWire(req.Status))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, NewTaskResponse(*task))
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req UpdateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Status == nil {
		s.writeError(w, r, errors.NewInvalidInputError("status", nil, "field required"))
		return
	}

	task, err := s.tasks.UpdateTask(r.Context(), id, req.TaskName, req.Description, statusFromWire(req.Status))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, NewTaskResponse(*task))
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err := s.tasks.DeleteTask(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.reporting.Summarize(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func taskIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if stderrors.Is(err, strconv.ErrRange) {
			return 0, errors.NewInvalidInputError("id", raw, "is out of range")
		}
		return 0, errors.NewInvalidInputError("id", raw, "must be an integer")
	}
	return id, nil
}

// decodeJSON reads exactly one JSON object from the body. Syntax errors,
// type mismatches and trailing data are all invalid input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var syntaxErr *json.SyntaxError
		var maxErr *http.MaxBytesError
		switch {
		case stderrors.As(err, &typeErr):
			return errors.NewInvalidInputError(typeErr.Field, typeErr.Value, fmt.Sprintf("expected %s", typeErr.Type))
		case stderrors.As(err, &syntaxErr), stderrors.Is(err, io.ErrUnexpectedEOF):
			return errors.NewInvalidInputError("body", nil, "malformed JSON")
		case stderrors.Is(err, io.EOF):
			return errors.NewInvalidInputError("body", nil, "request body is empty")
		case stderrors.As(err, &maxErr):
			return errors.NewInvalidInputError("body", nil, "request body is too large")
		default:
			return errors.NewInvalidInputError("body", nil, "invalid JSON")
		}
	}

	if dec.More() {
		return errors.NewInvalidInputError("body", nil, "unexpected data after JSON object")
	}
	return nil
}
