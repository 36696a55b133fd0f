package domain

// Shift represents a scheduled work period for an employee. The shifts
// table is a reserved extension point: no command creates or lists shifts
// yet, but the type and schema exist so future scheduling features are an
// additive change. Start is expected to precede End.
type Shift struct {
	ID         int64
	EmployeeID *int64
	Start      string
	End        string
}
