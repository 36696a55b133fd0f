package validation

import (
	"workflow-manager/internal/domain"
)

// EmployeeValidator provides validation for Employee-related operations
type EmployeeValidator struct {
	validator *Validator
}

// NewEmployeeValidator creates a new employee validator
func NewEmployeeValidator() *EmployeeValidator {
	return &EmployeeValidator{
		validator: NewValidator(),
	}
}

// ValidateName validates an employee name. Duplicate names are allowed by
// design, so only presence and length are checked.
func (ev *EmployeeValidator) ValidateName(name string) error {
	validationError := NewValidationError()

	trimmed := ev.validator.TrimString(name)
	if !ev.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("name")
		return validationError
	}

	if !ev.validator.IsValidStringLength(trimmed, 1, 255) {
		validationError.AddInvalidLengthError("name", trimmed, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateRole validates an employee role against the allowed enum values
func (ev *EmployeeValidator) ValidateRole(role string) error {
	allowed := []string{string(domain.RoleStaff), string(domain.RoleManager)}
	if !ev.validator.IsOneOf(role, allowed) {
		validationError := NewValidationError()
		validationError.AddInvalidEnumError("role", role, allowed)
		return validationError
	}
	return nil
}

// ValidateForCreation validates the inputs to an add-employee operation
func (ev *EmployeeValidator) ValidateForCreation(name string, role string) error {
	validationError := NewValidationError()

	if nameErr := ev.ValidateName(name); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}
	if roleErr := ev.ValidateRole(role); roleErr != nil {
		if roleValidationErr, ok := roleErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, roleValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidName returns a cleaned employee name if valid
func (ev *EmployeeValidator) GetValidName(name string) (string, error) {
	if err := ev.ValidateName(name); err != nil {
		return "", err
	}
	return ev.validator.TrimString(name), nil
}
