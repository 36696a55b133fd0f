package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanEmployee scans a single employee from a database row
func ScanEmployee(scanner Scanner) (*Employee, error) {
	emp := &Employee{}
	var active int64

	err := scanner.Scan(&emp.ID, &emp.Name, &emp.Role, &active)
	if err != nil {
		return nil, err
	}

	emp.Active = active != 0
	return emp, nil
}

// ScanEmployees scans multiple employees from database rows
func ScanEmployees(rows Rows) ([]*Employee, error) {
	var emps []*Employee
	for rows.Next() {
		emp, err := ScanEmployee(rows)
		if err != nil {
			return nil, err
		}
		emps = append(emps, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return emps, nil
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var description, deadline sql.NullString
	var assigneeID sql.NullInt64

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&description,
		&assigneeID,
		&task.Status,
		&deadline,
		&task.Created,
		&task.Updated,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		task.Description = description.String
	}
	if assigneeID.Valid {
		task.AssigneeID = &assigneeID.Int64
	}
	if deadline.Valid {
		task.Deadline = &deadline.String
	}

	return task, nil
}

// ScanTaskListRow scans a task joined with its assignee's name
func ScanTaskListRow(scanner Scanner) (*TaskListRow, error) {
	row := &TaskListRow{}
	var assigneeName, deadline sql.NullString

	err := scanner.Scan(&row.ID, &row.Title, &assigneeName, &row.Status, &deadline)
	if err != nil {
		return nil, err
	}

	if assigneeName.Valid {
		row.AssigneeName = &assigneeName.String
	}
	if deadline.Valid {
		row.Deadline = &deadline.String
	}

	return row, nil
}

// ScanTaskListRows scans multiple joined task rows from database rows
func ScanTaskListRows(rows Rows) ([]*TaskListRow, error) {
	var results []*TaskListRow
	for rows.Next() {
		row, err := ScanTaskListRow(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
