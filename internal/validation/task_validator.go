package validation

import (
	"workflow-manager/internal/domain"
	"workflow-manager/internal/repository/sqlite"
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

// ValidateTitle validates a task title
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimString(title)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidStringLength(trimmed, 1, 255) {
		validationError.AddInvalidLengthError("title", trimmed, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateStatus validates a task status against the allowed enum values
func (tv *TaskValidator) ValidateStatus(status string) error {
	allowed := []string{
		string(domain.StatusTodo),
		string(domain.StatusInProgress),
		string(domain.StatusDone),
	}
	if !tv.validator.IsOneOf(status, allowed) {
		validationError := NewValidationError()
		validationError.AddInvalidEnumError("status", status, allowed)
		return validationError
	}
	return nil
}

// ValidateDeadline validates an optional deadline string against the
// minute-resolution timestamp layout
func (tv *TaskValidator) ValidateDeadline(deadline *string) error {
	if deadline == nil {
		return nil
	}
	if !tv.validator.IsValidTimestamp(*deadline) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("deadline", *deadline, sqlite.TimestampLayout)
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task surrogate key
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateAssigneeID validates an optional assignee reference. Whether the
// id actually references an employee is deliberately not checked; the store
// does not enforce referential integrity for assignees.
func (tv *TaskValidator) ValidateAssigneeID(id *int64) error {
	if id == nil {
		return nil
	}
	if !tv.validator.IsValidID(*id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("assignee_id", *id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateForCreation validates the inputs to an add-task operation
func (tv *TaskValidator) ValidateForCreation(title string, assigneeID *int64, deadline *string) error {
	validationError := NewValidationError()

	collect := func(err error) {
		if err == nil {
			return
		}
		if ve, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, ve.Errors...)
		}
	}

	collect(tv.ValidateTitle(title))
	collect(tv.ValidateAssigneeID(assigneeID))
	collect(tv.ValidateDeadline(deadline))

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateForStatusUpdate validates the inputs to an update-task operation
func (tv *TaskValidator) ValidateForStatusUpdate(id int64, status string) error {
	validationError := NewValidationError()

	if idErr := tv.ValidateTaskID(id); idErr != nil {
		if ve, ok := idErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, ve.Errors...)
		}
	}
	if statusErr := tv.ValidateStatus(status); statusErr != nil {
		if ve, ok := statusErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, ve.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidTitle returns a cleaned task title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimString(title), nil
}
