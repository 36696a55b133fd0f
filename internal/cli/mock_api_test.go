package cli

import (
	"bytes"
	"context"
	"testing"

	"workflow-manager/internal/auth"
	"workflow-manager/internal/config"
	"workflow-manager/internal/domain"
	"workflow-manager/internal/logging"
)

// mockAPI implements the API interface for testing
type mockAPI struct {
	employees      []*domain.Employee
	tasks          []*domain.TaskSummary
	nextEmployeeID int64
	nextTaskID     int64

	// error injection
	listEmployeesErr error
	listTasksErr     error
	updateErr        error
}

// newMockAPI creates a new in-memory mock API instance
func newMockAPI() *mockAPI {
	return &mockAPI{
		nextEmployeeID: 1,
		nextTaskID:     1,
	}
}

func (m *mockAPI) AddEmployee(ctx context.Context, name string, role string) (*domain.Employee, error) {
	emp := &domain.Employee{
		ID:     m.nextEmployeeID,
		Name:   name,
		Role:   domain.Role(role),
		Active: true,
	}
	m.employees = append(m.employees, emp)
	m.nextEmployeeID++
	return emp, nil
}

func (m *mockAPI) ListEmployees(ctx context.Context, includeInactive bool) ([]*domain.Employee, error) {
	if m.listEmployeesErr != nil {
		return nil, m.listEmployeesErr
	}

	var result []*domain.Employee
	for _, emp := range m.employees {
		if !includeInactive && !emp.Active {
			continue
		}
		result = append(result, emp)
	}
	return result, nil
}

func (m *mockAPI) AddTask(ctx context.Context, title string, description string, assigneeID *int64, deadline *string) (*domain.Task, error) {
	// Resolve the assignee name the way the real store's left join does:
	// a dangling id simply lists as unassigned.
	var assigneeName *string
	if assigneeID != nil {
		for _, emp := range m.employees {
			if emp.ID == *assigneeID {
				name := emp.Name
				assigneeName = &name
				break
			}
		}
	}

	task := &domain.Task{
		ID:          m.nextTaskID,
		Title:       title,
		Description: description,
		AssigneeID:  assigneeID,
		Status:      domain.StatusTodo,
		Deadline:    deadline,
		Created:     "2026-08-24 10:00",
		Updated:     "2026-08-24 10:00",
	}
	m.tasks = append(m.tasks, &domain.TaskSummary{
		ID:           task.ID,
		Title:        task.Title,
		AssigneeName: assigneeName,
		Status:       task.Status,
		Deadline:     deadline,
	})
	m.nextTaskID++
	return task, nil
}

func (m *mockAPI) ListTasks(ctx context.Context, filterStatus *domain.Status) ([]*domain.TaskSummary, error) {
	if m.listTasksErr != nil {
		return nil, m.listTasksErr
	}

	var result []*domain.TaskSummary
	for _, task := range m.tasks {
		if filterStatus != nil && task.Status != *filterStatus {
			continue
		}
		result = append(result, task)
	}
	return result, nil
}

func (m *mockAPI) UpdateTaskStatus(ctx context.Context, id int64, status domain.Status) error {
	if m.updateErr != nil {
		return m.updateErr
	}

	// A missing id changes nothing; that matches the silent no-op contract.
	for _, task := range m.tasks {
		if task.ID == id {
			task.Status = status
			break
		}
	}
	return nil
}

// setupTestAppWithMockAPI creates a test app backed by the mock API, with
// output captured in a buffer.
func setupTestAppWithMockAPI(t *testing.T) (*App, *mockAPI, *bytes.Buffer) {
	t.Helper()

	m := newMockAPI()
	app := NewApp(m, nil, auth.NewAllowAll(), config.NewConfig(), logging.Nop())

	buf := &bytes.Buffer{}
	app.SetOutput(buf)

	return app, m, buf
}
