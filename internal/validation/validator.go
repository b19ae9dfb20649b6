package validation

import (
	"strings"
	"unicode/utf8"

	"todo-tracker/internal/domain"
)

// Limits bounds the length of user-entered task fields.
type Limits struct {
	TaskNameMinLength    int
	TaskNameMaxLength    int
	DescriptionMaxLength int
}

// DefaultLimits returns the limits used when no configuration is supplied.
func DefaultLimits() Limits {
	return Limits{
		TaskNameMinLength:    1,
		TaskNameMaxLength:    100,
		DescriptionMaxLength: 255,
	}
}

// Validator provides common validation utilities
type Validator struct {
	limits Limits
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{limits: DefaultLimits()}
}

// NewValidatorWithLimits creates a validator with explicit limits.
// Zero values fall back to the defaults.
func NewValidatorWithLimits(limits Limits) *Validator {
	defaults := DefaultLimits()
	if limits.TaskNameMinLength <= 0 {
		limits.TaskNameMinLength = defaults.TaskNameMinLength
	}
	if limits.TaskNameMaxLength <= 0 {
		limits.TaskNameMaxLength = defaults.TaskNameMaxLength
	}
	if limits.DescriptionMaxLength <= 0 {
		limits.DescriptionMaxLength = defaults.DescriptionMaxLength
	}
	return &Validator{limits: limits}
}

// Limits returns the limits in effect.
func (v *Validator) Limits() Limits {
	return v.limits
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range.
// Length is counted in characters after trimming.
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTaskNameLength checks if a task name length is within configured limits
func (v *Validator) IsValidTaskNameLength(name string) bool {
	return v.IsValidStringLength(name, v.limits.TaskNameMinLength, v.limits.TaskNameMaxLength)
}

// IsValidDescriptionLength checks an optional description; absent is always valid.
func (v *Validator) IsValidDescriptionLength(description *string) bool {
	if description == nil {
		return true
	}
	return utf8.RuneCountInString(*description) <= v.limits.DescriptionMaxLength
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// IsValidStatus checks a wire status string.
func (v *Validator) IsValidStatus(s string) bool {
	return domain.Status(s).IsValid()
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
