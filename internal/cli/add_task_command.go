package cli

import (
	"context"

	"workflow-manager/internal/api"
)

// AddTaskCommand handles the add-task command
type AddTaskCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewAddTaskCommand creates a new add-task command handler
func NewAddTaskCommand(app *App) *AddTaskCommand {
	return &AddTaskCommand{
		api:          app.api,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add-task command. assigneeID and deadline are nil when
// the flags were not given.
func (c *AddTaskCommand) Execute(ctx context.Context, title string, description string, assigneeID *int64, deadline *string) error {
	task, err := c.api.AddTask(ctx, title, description, assigneeID, deadline)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	c.app.logger.Debug().
		Int64("id", task.ID).
		Str("created", task.Created).
		Msg("task created")

	return nil
}
