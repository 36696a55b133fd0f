package cli

import (
	"context"
	"fmt"

	"workflow-manager/internal/export"
)

// ExportCommand handles the export command
type ExportCommand struct {
	exporter     *export.Exporter
	app          *App
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		exporter:     app.exporter,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the export command and prints the directory written to.
func (c *ExportCommand) Execute(ctx context.Context) error {
	outDir, err := c.exporter.ExportSnapshot(ctx)
	if err != nil {
		return c.errorHandler.Handle("export snapshot", err)
	}

	c.app.logger.Debug().Str("dir", outDir).Msg("snapshot exported")

	fmt.Fprintf(c.app.out, "Exported to %s/\n", outDir)
	return nil
}
