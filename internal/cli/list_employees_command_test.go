package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmployeesCommand_Output(t *testing.T) {
	app, m, buf := setupTestAppWithMockAPI(t)

	_, err := m.AddEmployee(context.Background(), "Alice", "manager")
	require.NoError(t, err)
	bob, err := m.AddEmployee(context.Background(), "Bob", "staff")
	require.NoError(t, err)
	bob.Active = false

	require.NoError(t, NewListEmployeesCommand(app).Execute(context.Background(), false))
	assert.Equal(t, "#  1 | Alice                | manager  | active\n", buf.String())

	buf.Reset()
	require.NoError(t, NewListEmployeesCommand(app).Execute(context.Background(), true))
	assert.Equal(t,
		"#  1 | Alice                | manager  | active\n"+
			"#  2 | Bob                  | staff    | inactive\n",
		buf.String())
}

func TestListEmployeesCommand_Empty(t *testing.T) {
	app, _, buf := setupTestAppWithMockAPI(t)

	require.NoError(t, NewListEmployeesCommand(app).Execute(context.Background(), false))
	assert.Equal(t, "No employees found\n", buf.String())
}

func TestListEmployeesCommand_APIError(t *testing.T) {
	app, m, buf := setupTestAppWithMockAPI(t)
	m.listEmployeesErr = assert.AnError

	err := NewListEmployeesCommand(app).Execute(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list employees")
	assert.Empty(t, buf.String())
}
