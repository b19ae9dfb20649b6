package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"todo-tracker/internal/errors"
)

const (
	detailNotFound = "Task not found"
	detailInternal = "Internal server error"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch appErr.Type {
	case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrorTypeNotFound:
		return http.StatusNotFound
	case errors.ErrorTypeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes the error response. Server-side failures are logged in
// full and answered with a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)

	var detail string
	switch status {
	case http.StatusBadRequest:
		detail = errors.GetUserMessage(err)
	case http.StatusNotFound:
		detail = detailNotFound
	case http.StatusGatewayTimeout:
		detail = errors.GetUserMessage(err)
	default:
		detail = detailInternal
	}

	if errors.ShouldLogError(err) {
		s.logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("code", errors.GetErrorCode(err)),
			slog.Any("error", err),
		)
	}

	writeJSON(w, status, ErrorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}
