package cli

import (
	"context"
	"fmt"

	"workflow-manager/internal/api"
	"workflow-manager/internal/domain"
)

// ListTasksCommand handles the list-tasks command
type ListTasksCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewListTasksCommand creates a new list-tasks command handler
func NewListTasksCommand(app *App) *ListTasksCommand {
	return &ListTasksCommand{
		api:          app.api,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list-tasks command. filterStatus is nil when no --status
// flag was given.
func (c *ListTasksCommand) Execute(ctx context.Context, filterStatus *domain.Status) error {
	tasks, err := c.api.ListTasks(ctx, filterStatus)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	c.printTasks(tasks)
	return nil
}

// printTasks prints one fixed-width line per task: id, title, assignee name
// or the unassigned placeholder, status, deadline or its placeholder.
func (c *ListTasksCommand) printTasks(tasks []*domain.TaskSummary) {
	if len(tasks) == 0 {
		fmt.Fprintln(c.app.out, "No tasks found")
		return
	}

	for _, task := range tasks {
		assignee := c.app.config.Display.UnassignedLabel
		if task.AssigneeName != nil {
			assignee = *task.AssigneeName
		}
		deadline := c.app.config.Display.DeadlinePlaceholder
		if task.Deadline != nil {
			deadline = *task.Deadline
		}

		fmt.Fprintf(c.app.out, "#%3d | %-25s | %-15s | %-12s | %s\n",
			task.ID, task.Title, assignee, task.Status, deadline)
	}
}
