package validation

import (
	"strings"

	"todo-tracker/internal/domain"
)

const (
	FieldTaskName    = "task_name"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldTaskID      = "task_id"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithLimits creates a task validator with explicit limits
func NewTaskValidatorWithLimits(limits Limits) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithLimits(limits),
	}
}

// ValidateTaskName validates a task name for creation or update
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()
	tv.checkName(validationError, name)
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

func (tv *TaskValidator) checkName(ve *ValidationError, name string) {
	trimmedName := tv.validator.TrimAndValidateString(name)

	if !tv.validator.IsNonEmptyString(trimmedName) {
		ve.AddRequiredError(FieldTaskName)
		return
	}

	limits := tv.validator.Limits()
	if !tv.validator.IsValidTaskNameLength(trimmedName) {
		ve.AddInvalidLengthError(FieldTaskName, trimmedName, limits.TaskNameMinLength, limits.TaskNameMaxLength)
	}
}

// ValidateDescription validates an optional description
func (tv *TaskValidator) ValidateDescription(description *string) error {
	if tv.validator.IsValidDescriptionLength(description) {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidLengthError(FieldDescription, *description, 0, tv.validator.Limits().DescriptionMaxLength)
	return validationError
}

// ValidateStatus parses a wire status, rejecting anything outside the known set
func (tv *TaskValidator) ValidateStatus(s string) (domain.Status, error) {
	if !tv.validator.IsValidStatus(s) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError(FieldStatus, s, "must be one of "+statusList())
		return "", validationError
	}
	return domain.Status(s), nil
}

// ValidateDraft validates every field of a draft and returns a copy. The name
// is checked trimmed but kept as given. An empty status is invalid; callers
// apply the default.
func (tv *TaskValidator) ValidateDraft(draft domain.Draft) (domain.Draft, error) {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateTaskName(draft.Name))
	validationError.Merge(tv.ValidateDescription(draft.Description))

	if _, err := tv.ValidateStatus(string(draft.Status)); err != nil {
		validationError.Merge(err)
	}

	if validationError.HasErrors() {
		return domain.Draft{}, validationError
	}

	return domain.Draft{
		Name:        draft.Name,
		Description: domain.CloneString(draft.Description),
		Status:      draft.Status,
	}, nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError(FieldTaskID, id, "must be a positive integer")
		return validationError
	}
	return nil
}

func statusList() string {
	names := make([]string, 0, len(domain.Statuses()))
	for _, s := range domain.Statuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
