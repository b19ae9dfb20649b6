package errors

import (
	"errors"
	"fmt"
	"testing"
)

type friendlyError struct{ msg string }

func (f *friendlyError) Error() string                  { return "raw: " + f.msg }
func (f *friendlyError) GetUserFriendlyMessage() string { return f.msg }

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode string
		wantMsg  string
	}{
		{"validation", NewValidationError("validation failed", cause), ErrorTypeValidation, "VALIDATION_FAILED", "validation failed"},
		{"not found", NewNotFoundError("task", "123"), ErrorTypeNotFound, "NOT_FOUND", "task not found: 123"},
		{"storage", NewStorageError("insert task", cause), ErrorTypeStorage, "STORAGE_ERROR", "storage operation failed: insert task"},
		{"invalid input", NewInvalidInputError("id", "abc", "must be an integer"), ErrorTypeInvalidInput, "INVALID_INPUT", "invalid input for id: must be an integer"},
		{"network", NewNetworkError("GET /tasks", cause), ErrorTypeNetwork, "NETWORK_ERROR", "request failed: GET /tasks"},
		{"timeout", NewTimeoutError("list tasks", "5s"), ErrorTypeTimeout, "TIMEOUT", "operation timed out: list tasks"},
		{"wrap", WrapError(cause, ErrorTypeStorage, "wrapped message"), ErrorTypeStorage, "storage", "wrapped message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.wantType {
				t.Errorf("type = %v, want %v", tt.err.Type, tt.wantType)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("code = %v, want %v", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMsg {
				t.Errorf("message = %v, want %v", tt.err.Message, tt.wantMsg)
			}
		})
	}
}

func TestNewNotFoundError_Context(t *testing.T) {
	err := NewNotFoundError("task", "42")

	resource, ok := err.GetContext("resource")
	if !ok || resource != "task" {
		t.Errorf("NewNotFoundError should set resource context")
	}
	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "42" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestTypePredicates(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewNotFoundError("task", "1"))

	if !IsAppError(wrapped) {
		t.Errorf("IsAppError should see through fmt wrapping")
	}
	if !IsNotFound(wrapped) {
		t.Errorf("IsNotFound should be true for wrapped not found error")
	}
	if IsValidation(wrapped) {
		t.Errorf("IsValidation should be false for not found error")
	}
	if IsAppError(errors.New("plain")) || IsAppError(nil) {
		t.Errorf("IsAppError should be false for plain and nil errors")
	}
	if !IsErrorType(NewStorageError("x", nil), ErrorTypeStorage) {
		t.Errorf("IsErrorType should match storage")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Validation error", NewValidationError("invalid input", nil), "invalid input"},
		{"Validation error with friendly cause", NewValidationError("invalid task", &friendlyError{"task_name is required"}), "task_name is required"},
		{"Not found error", NewNotFoundError("task", "123"), "task not found: 123"},
		{"Storage error", NewStorageError("query", errors.New("disk I/O error")), "A storage error occurred. Please try again."},
		{"Network error", NewNetworkError("GET /tasks", errors.New("connection refused")), "The server could not be reached. Please try again."},
		{"Timeout error", NewTimeoutError("query", "5s"), "The operation timed out. Please try again."},
		{"Regular error", errors.New("regular error"), "regular error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(&AppError{Code: "VALIDATION_FAILED"}) != "VALIDATION_FAILED" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(errors.New("regular error")) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("invalid input", nil), false},
		{"Not found error", NewNotFoundError("task", "123"), false},
		{"Invalid input error", NewInvalidInputError("id", "x", "format"), false},
		{"Storage error", NewStorageError("query", errors.New("timeout")), true},
		{"Network error", NewNetworkError("GET /tasks", nil), true},
		{"Timeout error", NewTimeoutError("query", "5s"), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
