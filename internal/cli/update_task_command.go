package cli

import (
	"context"

	"workflow-manager/internal/api"
	"workflow-manager/internal/domain"
)

// UpdateTaskCommand handles the update-task command
type UpdateTaskCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewUpdateTaskCommand creates a new update-task command handler
func NewUpdateTaskCommand(app *App) *UpdateTaskCommand {
	return &UpdateTaskCommand{
		api:          app.api,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the update-task command. The command prints nothing on
// success, and a non-existent task id is a silent no-op: zero rows change,
// no message is emitted, and the exit status stays zero. That matches the
// store's idempotent-update contract.
func (c *UpdateTaskCommand) Execute(ctx context.Context, id int64, status domain.Status) error {
	if err := c.api.UpdateTaskStatus(ctx, id, status); err != nil {
		return c.errorHandler.Handle("update task", err)
	}

	c.app.logger.Debug().
		Int64("id", id).
		Str("status", string(status)).
		Msg("task status updated")

	return nil
}
