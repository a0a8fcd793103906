package task

import "fmt"

// ErrorCode classifies a validation failure
type ErrorCode string

const (
	ErrCodeRequired ErrorCode = "required"
	ErrCodeTooShort ErrorCode = "too_short"
)

// ValidationError describes a single invalid field
type ValidationError struct {
	Field   string
	Value   any
	Code    ErrorCode
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldValidator validates one aspect of a task
type FieldValidator interface {
	ValidateField(task *Task) *ValidationError
}

// DefaultValidators returns the validators applied before a task is created
func DefaultValidators() []FieldValidator {
	return []FieldValidator{
		&TextValidator{},
	}
}

// Validate runs all validators and returns the first failure, or nil
func Validate(task *Task) *ValidationError {
	for _, v := range DefaultValidators() {
		if err := v.ValidateField(task); err != nil {
			return err
		}
	}
	return nil
}
