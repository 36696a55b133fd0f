package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"workflow-manager/internal/api"
	"workflow-manager/internal/auth"
	"workflow-manager/internal/config"
	"workflow-manager/internal/domain"
	"workflow-manager/internal/errors"
	"workflow-manager/internal/export"
	"workflow-manager/internal/logging"
	"workflow-manager/internal/repository/sqlite"
)

// readOnlyCommands are exempt from the authorization check.
var readOnlyCommands = map[string]bool{
	"list-employees": true,
	"list-tasks":     true,
}

// workflowCommands are the subcommands that need a database connection.
var workflowCommands = map[string]bool{
	"add-employee":   true,
	"list-employees": true,
	"add-task":       true,
	"list-tasks":     true,
	"update-task":    true,
	"export":         true,
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd        *cobra.Command
	config     *config.Config
	authorizer auth.Authorizer
	app        *App
	repo       sqlite.Repository
	out        io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, authorizer auth.Authorizer) *RootCommand {
	root := &RootCommand{
		config:     cfg,
		authorizer: authorizer,
	}

	root.cmd = &cobra.Command{
		Use:   "wfm",
		Short: "An offline task and workforce tracker",
		Long: `Workflow Manager (wfm) tracks employees, tasks, and shifts in a local
SQLite database, entirely offline.

EXAMPLES:
  wfm add-employee "Alice" --role manager
  wfm list-employees --all
  wfm add-task "Write report" --assignee 1 --deadline "2026-09-01 17:00"
  wfm list-tasks --status done
  wfm update-task 1 done
  wfm export

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    WFM_DB_DIR              Database directory (default: ~/.wfm)
    WFM_DB_FILENAME         Database filename (default: workflow.db)
    WFM_DB_QUERY_TIMEOUT    Query timeout (default: 10s)
    WFM_EXPORT_BASE_DIR     Where export directories are created (default: .)
    WFM_APP_TIMEOUT         Per-command timeout (default: 60s)
    WFM_APP_VERBOSE         Enable debug logging (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command, releasing the database connection on every
// exit path.
func (r *RootCommand) Execute() error {
	defer func() {
		if r.repo != nil {
			r.repo.Close()
		}
	}()
	return r.cmd.Execute()
}

// setup applies flag overrides, authorizes mutating commands, and opens the
// database connection for the single command about to run.
func (r *RootCommand) setup(cmd *cobra.Command) error {
	if err := r.applyConfigFromFlags(); err != nil {
		return err
	}

	if !workflowCommands[cmd.Name()] {
		return nil
	}

	if !readOnlyCommands[cmd.Name()] {
		if err := r.authorizer.Authorize(cmd.Context(), cmd.Name()); err != nil {
			return errors.NewPermissionError(cmd.Name())
		}
	}

	if err := EnsureDatabaseDir(r.config); err != nil {
		return err
	}

	repo, err := sqlite.New(r.config.GetDatabasePath())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	r.repo = repo

	logger := logging.New(r.config.Application.Verbose)
	apiInstance := api.New(repo)
	exporter := export.New(repo, r.config.Export.BaseDir, r.config.Export.DirPrefix)
	r.app = NewApp(apiInstance, exporter, r.authorizer, r.config, logger)
	if r.out != nil {
		r.app.SetOutput(r.out)
	}

	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides WFM_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides WFM_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides WFM_DB_QUERY_TIMEOUT)")
	flags.String("export-dir", "", "Export base directory (overrides WFM_EXPORT_BASE_DIR)")
	flags.Duration("app-timeout", 0, "Per-command timeout (overrides WFM_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable debug logging (overrides WFM_APP_VERBOSE)")
}

// applyConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) applyConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if exportDir, _ := flags.GetString("export-dir"); exportDir != "" {
		r.config.Export.BaseDir = exportDir
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return r.config.Validate()
}

// commandContext returns a context bounded by the configured per-command timeout.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.config.Application.Timeout)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addEmployeeCmd := &cobra.Command{
		Use:   "add-employee NAME",
		Short: "Add a new employee",
		Long:  "Add a new employee. New employees start active; there is no uniqueness constraint on names.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, _ := cmd.Flags().GetString("role")
			if _, err := domain.ParseRole(role); err != nil {
				return err
			}

			ctx, cancel := r.commandContext()
			defer cancel()

			return NewAddEmployeeCommand(r.app).Execute(ctx, args[0], role)
		},
	}
	addEmployeeCmd.Flags().String("role", string(domain.RoleStaff), "Employee role (staff or manager)")

	listEmployeesCmd := &cobra.Command{
		Use:   "list-employees",
		Short: "List employees",
		Long:  "List employees in insertion order. Inactive employees are hidden unless --all is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			ctx, cancel := r.commandContext()
			defer cancel()

			return NewListEmployeesCommand(r.app).Execute(ctx, all)
		},
	}
	listEmployeesCmd.Flags().Bool("all", false, "Include inactive employees")

	addTaskCmd := &cobra.Command{
		Use:   "add-task TITLE",
		Short: "Create a task",
		Long: `Create a task with status todo. The assignee is an employee id and is
optional; a deadline uses the "YYYY-MM-DD HH:MM" format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, _ := cmd.Flags().GetString("desc")

			var assigneeID *int64
			if cmd.Flags().Changed("assignee") {
				id, _ := cmd.Flags().GetInt64("assignee")
				assigneeID = &id
			}

			var deadline *string
			if cmd.Flags().Changed("deadline") {
				d, _ := cmd.Flags().GetString("deadline")
				deadline = &d
			}

			ctx, cancel := r.commandContext()
			defer cancel()

			return NewAddTaskCommand(r.app).Execute(ctx, args[0], desc, assigneeID, deadline)
		},
	}
	addTaskCmd.Flags().String("desc", "", "Task description")
	addTaskCmd.Flags().Int64("assignee", 0, "Assignee employee id")
	addTaskCmd.Flags().String("deadline", "", `Deadline as "YYYY-MM-DD HH:MM"`)

	listTasksCmd := &cobra.Command{
		Use:   "list-tasks",
		Short: "List tasks",
		Long:  "List tasks in insertion order with their assignee's name, optionally filtered to one status.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filterStatus *domain.Status
			if cmd.Flags().Changed("status") {
				s, _ := cmd.Flags().GetString("status")
				status, err := domain.ParseStatus(s)
				if err != nil {
					return err
				}
				filterStatus = &status
			}

			ctx, cancel := r.commandContext()
			defer cancel()

			return NewListTasksCommand(r.app).Execute(ctx, filterStatus)
		},
	}
	listTasksCmd.Flags().String("status", "", "Filter to one status (todo, in-progress, done)")

	updateTaskCmd := &cobra.Command{
		Use:   "update-task ID STATUS",
		Short: "Update task status",
		Long: `Set a task's status and refresh its updated timestamp. Updating an id
that does not exist changes nothing and is not an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q: must be an integer", args[0])
			}

			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return err
			}

			ctx, cancel := r.commandContext()
			defer cancel()

			return NewUpdateTaskCommand(r.app).Execute(ctx, id, status)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a CSV snapshot",
		Long: `Dump all tables into a dated directory of CSV files for external
sharing or backup. The snapshot is best-effort, not a crash-consistent backup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewExportCommand(r.app).Execute(ctx)
		},
	}

	r.cmd.AddCommand(
		addEmployeeCmd,
		listEmployeesCmd,
		addTaskCmd,
		listTasksCmd,
		updateTaskCmd,
		exportCmd,
	)
}

// SetArgs overrides os.Args for tests.
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetOutput redirects command output, used by tests.
func (r *RootCommand) SetOutput(w io.Writer) {
	r.out = w
}
