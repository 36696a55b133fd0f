package sqlite

// Employee represents a row in the employees table.
type Employee struct {
	ID     int64
	Name   string
	Role   string
	Active bool
}

// Task represents a row in the tasks table. Timestamps are stored as
// minute-resolution local time strings (see formatters.go). AssigneeID and
// Deadline use pointers to allow NULL values.
type Task struct {
	ID          int64
	Title       string
	Description string
	AssigneeID  *int64
	Status      string
	Deadline    *string
	Created     string
	Updated     string
}

// Shift represents a row in the shifts table. The table is schema-only for
// now; no repository operation writes to it.
type Shift struct {
	ID         int64
	EmployeeID *int64
	Start      string
	End        string
}

// TaskListRow is a task left-joined with its assignee's name.
// AssigneeName is nil for unassigned tasks.
type TaskListRow struct {
	ID           int64
	Title        string
	AssigneeName *string
	Status       string
	Deadline     *string
}
