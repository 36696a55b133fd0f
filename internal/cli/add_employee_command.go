package cli

import (
	"context"

	"workflow-manager/internal/api"
)

// AddEmployeeCommand handles the add-employee command
type AddEmployeeCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewAddEmployeeCommand creates a new add-employee command handler
func NewAddEmployeeCommand(app *App) *AddEmployeeCommand {
	return &AddEmployeeCommand{
		api:          app.api,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add-employee command. Like the other mutating commands
// it prints nothing on success.
func (c *AddEmployeeCommand) Execute(ctx context.Context, name string, role string) error {
	emp, err := c.api.AddEmployee(ctx, name, role)
	if err != nil {
		return c.errorHandler.Handle("add employee", err)
	}

	c.app.logger.Debug().
		Int64("id", emp.ID).
		Str("role", string(emp.Role)).
		Msg("employee created")

	return nil
}
