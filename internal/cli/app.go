package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"workflow-manager/internal/api"
	"workflow-manager/internal/auth"
	"workflow-manager/internal/config"
	"workflow-manager/internal/export"
)

// App bundles the dependencies shared by all command handlers.
type App struct {
	api        api.API
	exporter   *export.Exporter
	authorizer auth.Authorizer
	config     *config.Config
	logger     zerolog.Logger
	out        io.Writer
}

// NewApp creates a new CLI application instance with dependency injection.
func NewApp(apiInstance api.API, exporter *export.Exporter, authorizer auth.Authorizer, cfg *config.Config, logger zerolog.Logger) *App {
	return &App{
		api:        apiInstance,
		exporter:   exporter,
		authorizer: authorizer,
		config:     cfg,
		logger:     logger,
		out:        os.Stdout,
	}
}

// SetOutput redirects command output, used by tests.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// EnsureDatabaseDir creates the database directory if it does not exist.
func EnsureDatabaseDir(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.Database.Dir, os.FileMode(cfg.Database.DirPermissions)); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}
