package api

import (
	"context"
	"time"

	"workflow-manager/internal/domain"
	"workflow-manager/internal/repository/sqlite"
	"workflow-manager/internal/validation"
)

// timeNow is a variable so tests can pin the clock
var timeNow = time.Now

// API defines the interface for all workflow operations.
type API interface {
	// Employee operations
	AddEmployee(ctx context.Context, name string, role string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, includeInactive bool) ([]*domain.Employee, error)

	// Task operations
	AddTask(ctx context.Context, title string, description string, assigneeID *int64, deadline *string) (*domain.Task, error)
	ListTasks(ctx context.Context, filterStatus *domain.Status) ([]*domain.TaskSummary, error)
	UpdateTaskStatus(ctx context.Context, id int64, status domain.Status) error
}

type apiImpl struct {
	repo              sqlite.Repository
	mapper            *domain.Mapper
	employeeValidator *validation.EmployeeValidator
	taskValidator     *validation.TaskValidator
}

// New creates a new API instance.
func New(repo sqlite.Repository) API {
	return &apiImpl{
		repo:              repo,
		mapper:            domain.NewMapper(),
		employeeValidator: validation.NewEmployeeValidator(),
		taskValidator:     validation.NewTaskValidator(),
	}
}

// AddEmployee inserts a new active employee.
func (a *apiImpl) AddEmployee(ctx context.Context, name string, role string) (*domain.Employee, error) {
	if err := a.employeeValidator.ValidateForCreation(name, role); err != nil {
		return nil, err
	}

	cleanedName, err := a.employeeValidator.GetValidName(name)
	if err != nil {
		return nil, err
	}

	dbEmp := &sqlite.Employee{Name: cleanedName, Role: role}
	if err := a.repo.CreateEmployee(ctx, dbEmp); err != nil {
		return nil, err
	}

	emp := a.mapper.Employee.FromDatabase(*dbEmp)
	return &emp, nil
}

// ListEmployees returns employees in insertion order. Inactive employees
// are filtered out unless includeInactive is set.
func (a *apiImpl) ListEmployees(ctx context.Context, includeInactive bool) ([]*domain.Employee, error) {
	dbEmps, err := a.repo.ListEmployees(ctx, !includeInactive)
	if err != nil {
		return nil, err
	}
	return a.mapper.Employee.FromDatabaseSlice(dbEmps), nil
}

// AddTask inserts a new task with status todo and created == updated set to
// the current minute. The assignee id is not checked against the employees
// table; dangling references list as unassigned.
func (a *apiImpl) AddTask(ctx context.Context, title string, description string, assigneeID *int64, deadline *string) (*domain.Task, error) {
	if err := a.taskValidator.ValidateForCreation(title, assigneeID, deadline); err != nil {
		return nil, err
	}

	cleanedTitle, err := a.taskValidator.GetValidTitle(title)
	if err != nil {
		return nil, err
	}

	now := sqlite.FormatTimestamp(timeNow())
	dbTask := &sqlite.Task{
		Title:       cleanedTitle,
		Description: description,
		AssigneeID:  assigneeID,
		Status:      string(domain.StatusTodo),
		Deadline:    deadline,
		Created:     now,
		Updated:     now,
	}
	if err := a.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	task := a.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// ListTasks returns tasks joined with assignee names, in insertion order,
// optionally filtered to one status.
func (a *apiImpl) ListTasks(ctx context.Context, filterStatus *domain.Status) ([]*domain.TaskSummary, error) {
	var dbStatus *string
	if filterStatus != nil {
		s := string(*filterStatus)
		dbStatus = &s
	}

	rows, err := a.repo.ListTasks(ctx, dbStatus)
	if err != nil {
		return nil, err
	}
	return a.mapper.Task.SummariesFromDatabase(rows), nil
}

// UpdateTaskStatus sets a task's status and refreshes its updated timestamp.
// A missing id affects zero rows and is not an error: the update is an
// intentional silent no-op in that case.
func (a *apiImpl) UpdateTaskStatus(ctx context.Context, id int64, status domain.Status) error {
	if err := a.taskValidator.ValidateForStatusUpdate(id, string(status)); err != nil {
		return err
	}

	now := sqlite.FormatTimestamp(timeNow())
	_, err := a.repo.UpdateTaskStatus(ctx, id, string(status), now)
	return err
}
