package validation

import (
	"strings"
	"time"

	"workflow-manager/internal/repository/sqlite"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidID checks if a surrogate key is valid (positive)
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// IsValidTimestamp checks if a string matches the minute-resolution storage
// layout used for deadlines and audit timestamps
func (v *Validator) IsValidTimestamp(s string) bool {
	_, err := sqlite.ParseTimestamp(s)
	return err == nil
}

// IsOneOf checks membership in an allowed enum set
func (v *Validator) IsOneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// IsReasonableDeadline checks that a deadline is not absurdly far in the
// past or future
func (v *Validator) IsReasonableDeadline(t time.Time) bool {
	now := time.Now()
	tenYearsAgo := now.AddDate(-10, 0, 0)
	tenYearsFromNow := now.AddDate(10, 0, 0)
	return t.After(tenYearsAgo) && t.Before(tenYearsFromNow)
}

// TrimString trims whitespace and returns the cleaned string
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}
