package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"workflow-manager/internal/errors"
	"workflow-manager/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// ExportTables lists the tables included in a snapshot export, in the order
// they are written.
var ExportTables = []string{"employees", "tasks", "shifts"}

// Repository defines the interface for database operations
type Repository interface {
	// Employee operations
	CreateEmployee(ctx context.Context, emp *Employee) error
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	ListEmployees(ctx context.Context, activeOnly bool) ([]*Employee, error)

	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context, filterStatus *string) ([]*TaskListRow, error)
	UpdateTaskStatus(ctx context.Context, id int64, status string, updated string) (int64, error)

	// Export support
	DumpTable(ctx context.Context, table string) ([]string, [][]string, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance and ensures the schema is
// present. Opening is safe on every startup: migrations are versioned and
// re-running them on an initialized store applies nothing.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateEmployee inserts a new employee with active=1
func (r *SQLiteRepository) CreateEmployee(ctx context.Context, emp *Employee) error {
	query := `INSERT INTO employees (name, role, active) VALUES (?, ?, 1)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, emp.Name, emp.Role)
	if err != nil {
		return err
	}

	emp.ID = id
	emp.Active = true
	return nil
}

// GetEmployee retrieves an employee by ID
func (r *SQLiteRepository) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	query := `SELECT id, name, role, active FROM employees WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanEmployee, "employee", fmt.Sprintf("%d", id), id)
}

// ListEmployees retrieves employees in insertion order, optionally
// restricted to active ones
func (r *SQLiteRepository) ListEmployees(ctx context.Context, activeOnly bool) ([]*Employee, error) {
	query := `SELECT id, name, role, active FROM employees`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanEmployees, "employees")
}

// CreateTask inserts a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (title, description, assignee_id, status, deadline, created, updated)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Title, nullString(task.Description), task.AssigneeID, task.Status, task.Deadline, task.Created, task.Updated)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, title, description, assignee_id, status, deadline, created, updated
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves tasks left-joined with the assignee's employee name so
// unassigned tasks still list, optionally filtered to one status
func (r *SQLiteRepository) ListTasks(ctx context.Context, filterStatus *string) ([]*TaskListRow, error) {
	query := `
	SELECT t.id, t.title, e.name, t.status, t.deadline
	FROM tasks t
	LEFT JOIN employees e ON t.assignee_id = e.id`

	var args []interface{}
	if filterStatus != nil {
		query += ` WHERE t.status = ?`
		args = append(args, *filterStatus)
	}
	query += ` ORDER BY t.id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTaskListRows, "tasks", args...)
}

// UpdateTaskStatus sets the status and updated timestamp for a task and
// returns the number of rows touched. A missing id yields zero rows and no
// error; the update is an intentional no-op in that case.
func (r *SQLiteRepository) UpdateTaskStatus(ctx context.Context, id int64, status string, updated string) (int64, error) {
	query := `UPDATE tasks SET status = ?, updated = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, status, updated, id)
}

// DumpTable reads every row of one of the export tables and returns the
// column names plus the rows as strings, NULLs rendered as empty strings.
// The table name is checked against the export allowlist since it cannot be
// bound as a query parameter.
func (r *SQLiteRepository) DumpTable(ctx context.Context, table string) ([]string, [][]string, error) {
	if !isExportTable(table) {
		return nil, nil, errors.NewInvalidInputError("table", table, "not an exportable table")
	}

	rows, err := r.db.QueryContext(ctx, `SELECT * FROM `+table)
	if err != nil {
		return nil, nil, HandleDatabaseError("dump "+table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, HandleDatabaseError("get columns for "+table, err)
	}

	var records [][]string
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		dests := make([]interface{}, len(cols))
		for i := range values {
			dests[i] = &values[i]
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, nil, HandleDatabaseError("scan "+table, err)
		}

		record := make([]string, len(cols))
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, HandleDatabaseError("iterate "+table, err)
	}

	return cols, records, nil
}

func isExportTable(table string) bool {
	for _, t := range ExportTables {
		if t == table {
			return true
		}
	}
	return false
}

// nullString maps an empty string to NULL so optional text columns stay
// NULL instead of storing empty strings.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
