package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the workflow manager
type Config struct {
	Database    DatabaseConfig
	Export      ExportConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"WFM_DB_DIR"`
	Filename       string        `env:"WFM_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"WFM_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"WFM_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"WFM_DB_DIR_PERMISSIONS"`
}

// ExportConfig holds snapshot export configuration
type ExportConfig struct {
	BaseDir   string `env:"WFM_EXPORT_BASE_DIR"`
	DirPrefix string `env:"WFM_EXPORT_DIR_PREFIX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	UnassignedLabel     string `env:"WFM_DISPLAY_UNASSIGNED_LABEL"`
	DeadlinePlaceholder string `env:"WFM_DISPLAY_DEADLINE_PLACEHOLDER"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"WFM_APP_TIMEOUT"`
	Verbose bool          `env:"WFM_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".wfm")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "workflow.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Export: ExportConfig{
			BaseDir:   ".",
			DirPrefix: "export_",
		},
		Display: DisplayConfig{
			UnassignedLabel:     "unassigned",
			DeadlinePlaceholder: "-",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("WFM_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("WFM_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("WFM_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("WFM_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("WFM_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Export configuration
	if dir := os.Getenv("WFM_EXPORT_BASE_DIR"); dir != "" {
		c.Export.BaseDir = dir
	}
	if prefix := os.Getenv("WFM_EXPORT_DIR_PREFIX"); prefix != "" {
		c.Export.DirPrefix = prefix
	}

	// Display configuration
	if label := os.Getenv("WFM_DISPLAY_UNASSIGNED_LABEL"); label != "" {
		c.Display.UnassignedLabel = label
	}
	if placeholder := os.Getenv("WFM_DISPLAY_DEADLINE_PLACEHOLDER"); placeholder != "" {
		c.Display.DeadlinePlaceholder = placeholder
	}

	// Application configuration
	if timeout := os.Getenv("WFM_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("WFM_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Export.BaseDir == "" {
		return &ConfigError{Field: "export.base_dir", Message: "export base directory cannot be empty"}
	}
	if c.Export.DirPrefix == "" {
		return &ConfigError{Field: "export.dir_prefix", Message: "export directory prefix cannot be empty"}
	}

	if c.Display.UnassignedLabel == "" {
		return &ConfigError{Field: "display.unassigned_label", Message: "unassigned label cannot be empty"}
	}
	if c.Display.DeadlinePlaceholder == "" {
		return &ConfigError{Field: "display.deadline_placeholder", Message: "deadline placeholder cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
