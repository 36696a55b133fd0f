package cli

import (
	"context"
	"fmt"

	"workflow-manager/internal/api"
	"workflow-manager/internal/domain"
)

// ListEmployeesCommand handles the list-employees command
type ListEmployeesCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewListEmployeesCommand creates a new list-employees command handler
func NewListEmployeesCommand(app *App) *ListEmployeesCommand {
	return &ListEmployeesCommand{
		api:          app.api,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list-employees command
func (c *ListEmployeesCommand) Execute(ctx context.Context, includeInactive bool) error {
	emps, err := c.api.ListEmployees(ctx, includeInactive)
	if err != nil {
		return c.errorHandler.Handle("list employees", err)
	}

	c.printEmployees(emps)
	return nil
}

// printEmployees prints one fixed-width line per employee:
// id, name, role, active/inactive label.
func (c *ListEmployeesCommand) printEmployees(emps []*domain.Employee) {
	if len(emps) == 0 {
		fmt.Fprintln(c.app.out, "No employees found")
		return
	}

	for _, emp := range emps {
		fmt.Fprintf(c.app.out, "#%3d | %-20s | %-8s | %s\n",
			emp.ID, emp.Name, emp.Role, emp.ActiveLabel())
	}
}
