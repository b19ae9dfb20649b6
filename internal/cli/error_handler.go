package cli

import (
	stderrors "errors"
	"fmt"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, eh.HandleSimple(err))
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := errors.AsAppError(err); ok {
		return &friendlyError{message: errors.GetUserMessage(err), cause: err}
	}

	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return &friendlyError{message: validationErr.GetUserFriendlyMessage(), cause: err}
	}

	// Fallback for unknown errors
	return err
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsValidation(err)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsNotFound(err)
}

// IsStorageError checks if an error is a storage error
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// friendlyError shows the user message while keeping the cause for errors.Is/As.
type friendlyError struct {
	message string
	cause   error
}

func (e *friendlyError) Error() string { return e.message }
func (e *friendlyError) Unwrap() error { return e.cause }
