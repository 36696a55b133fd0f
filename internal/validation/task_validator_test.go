package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateTitle("Write report"))
	assert.Error(t, tv.ValidateTitle(""))
	assert.Error(t, tv.ValidateTitle("   "))
}

func TestValidateStatus(t *testing.T) {
	tv := NewTaskValidator()

	for _, status := range []string{"todo", "in-progress", "done"} {
		assert.NoError(t, tv.ValidateStatus(status), "status %q should be valid", status)
	}

	for _, status := range []string{"blocked", "DONE", "in progress", ""} {
		assert.Error(t, tv.ValidateStatus(status), "status %q should be rejected", status)
	}
}

func TestValidateDeadline(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateDeadline(nil))

	valid := "2026-09-01 17:00"
	assert.NoError(t, tv.ValidateDeadline(&valid))

	tests := []string{"2026-09-01", "tomorrow", "2026-09-01T17:00:00Z", ""}
	for _, input := range tests {
		deadline := input
		assert.Error(t, tv.ValidateDeadline(&deadline), "deadline %q should be rejected", input)
	}
}

func TestValidateTaskID(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateTaskID(1))
	assert.Error(t, tv.ValidateTaskID(0))
	assert.Error(t, tv.ValidateTaskID(-5))
}

func TestValidateAssigneeID(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateAssigneeID(nil))

	valid := int64(3)
	assert.NoError(t, tv.ValidateAssigneeID(&valid))

	invalid := int64(0)
	assert.Error(t, tv.ValidateAssigneeID(&invalid))
}

func TestValidateForCreationCollects(t *testing.T) {
	tv := NewTaskValidator()

	badAssignee := int64(-1)
	badDeadline := "someday"
	err := tv.ValidateForCreation("", &badAssignee, &badDeadline)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, ve.Errors, 3)
}

func TestValidateForStatusUpdate(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateForStatusUpdate(1, "done"))
	assert.Error(t, tv.ValidateForStatusUpdate(0, "done"))
	assert.Error(t, tv.ValidateForStatusUpdate(1, "finished"))
}
