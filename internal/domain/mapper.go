package domain

import (
	"workflow-manager/internal/repository/sqlite"
)

// EmployeeMapper handles conversion between domain and database Employee models.
type EmployeeMapper struct{}

// NewEmployeeMapper creates a new EmployeeMapper instance.
func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

// ToDatabase converts a domain Employee to a database Employee.
func (m *EmployeeMapper) ToDatabase(emp Employee) sqlite.Employee {
	return sqlite.Employee{
		ID:     emp.ID,
		Name:   emp.Name,
		Role:   string(emp.Role),
		Active: emp.Active,
	}
}

// FromDatabase converts a database Employee to a domain Employee.
func (m *EmployeeMapper) FromDatabase(dbEmp sqlite.Employee) Employee {
	return Employee{
		ID:     dbEmp.ID,
		Name:   dbEmp.Name,
		Role:   Role(dbEmp.Role),
		Active: dbEmp.Active,
	}
}

// FromDatabaseSlice converts a slice of database Employees to domain Employees.
func (m *EmployeeMapper) FromDatabaseSlice(dbEmps []*sqlite.Employee) []*Employee {
	emps := make([]*Employee, len(dbEmps))
	for i, dbEmp := range dbEmps {
		emp := m.FromDatabase(*dbEmp)
		emps[i] = &emp
	}
	return emps
}

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(task Task) sqlite.Task {
	return sqlite.Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		AssigneeID:  task.AssigneeID,
		Status:      string(task.Status),
		Deadline:    task.Deadline,
		Created:     task.Created,
		Updated:     task.Updated,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:          dbTask.ID,
		Title:       dbTask.Title,
		Description: dbTask.Description,
		AssigneeID:  dbTask.AssigneeID,
		Status:      Status(dbTask.Status),
		Deadline:    dbTask.Deadline,
		Created:     dbTask.Created,
		Updated:     dbTask.Updated,
	}
}

// SummaryFromDatabase converts a joined database task row to a TaskSummary.
func (m *TaskMapper) SummaryFromDatabase(row sqlite.TaskListRow) TaskSummary {
	return TaskSummary{
		ID:           row.ID,
		Title:        row.Title,
		AssigneeName: row.AssigneeName,
		Status:       Status(row.Status),
		Deadline:     row.Deadline,
	}
}

// SummariesFromDatabase converts a slice of joined database task rows.
func (m *TaskMapper) SummariesFromDatabase(rows []*sqlite.TaskListRow) []*TaskSummary {
	summaries := make([]*TaskSummary, len(rows))
	for i, row := range rows {
		summary := m.SummaryFromDatabase(*row)
		summaries[i] = &summary
	}
	return summaries
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Employee *EmployeeMapper
	Task     *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Employee: NewEmployeeMapper(),
		Task:     NewTaskMapper(),
	}
}
