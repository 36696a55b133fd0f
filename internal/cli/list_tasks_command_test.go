package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workflow-manager/internal/domain"
)

func TestListTasksCommand_Output(t *testing.T) {
	app, m, buf := setupTestAppWithMockAPI(t)

	alice, err := m.AddEmployee(context.Background(), "Alice", "manager")
	require.NoError(t, err)

	assigned, err := m.AddTask(context.Background(), "Write report", "", &alice.ID, nil)
	require.NoError(t, err)
	require.NoError(t, m.UpdateTaskStatus(context.Background(), assigned.ID, domain.StatusDone))

	deadline := "2026-09-01 17:00"
	_, err = m.AddTask(context.Background(), "File expenses", "", nil, &deadline)
	require.NoError(t, err)

	require.NoError(t, NewListTasksCommand(app).Execute(context.Background(), nil))
	assert.Equal(t,
		"#  1 | Write report              | Alice           | done         | -\n"+
			"#  2 | File expenses             | unassigned      | todo         | 2026-09-01 17:00\n",
		buf.String())
}

func TestListTasksCommand_StatusFilter(t *testing.T) {
	app, m, buf := setupTestAppWithMockAPI(t)

	first, err := m.AddTask(context.Background(), "Write report", "", nil, nil)
	require.NoError(t, err)
	_, err = m.AddTask(context.Background(), "File expenses", "", nil, nil)
	require.NoError(t, err)
	require.NoError(t, m.UpdateTaskStatus(context.Background(), first.ID, domain.StatusDone))

	done := domain.StatusDone
	require.NoError(t, NewListTasksCommand(app).Execute(context.Background(), &done))
	assert.Equal(t, "#  1 | Write report              | unassigned      | done         | -\n", buf.String())
}

func TestListTasksCommand_Empty(t *testing.T) {
	app, _, buf := setupTestAppWithMockAPI(t)

	require.NoError(t, NewListTasksCommand(app).Execute(context.Background(), nil))
	assert.Equal(t, "No tasks found\n", buf.String())
}

func TestListTasksCommand_APIError(t *testing.T) {
	app, m, buf := setupTestAppWithMockAPI(t)
	m.listTasksErr = assert.AnError

	err := NewListTasksCommand(app).Execute(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list tasks")
	assert.Empty(t, buf.String())
}
