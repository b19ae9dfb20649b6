package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"todo-tracker/internal/api"
	"todo-tracker/internal/client"
	"todo-tracker/internal/config"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/repository/sqlite"
	"todo-tracker/internal/services"
	"todo-tracker/internal/tui"
	"todo-tracker/internal/validation"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	loader  *config.Loader
	config  *config.Config
	appOpts []AppOption

	// Opened on first use so serve-less commands like tui never touch the database.
	repo      sqlite.Repository
	container *services.ServiceContainer
	app       *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(appOpts ...AppOption) *RootCommand {
	root := &RootCommand{
		loader:  config.NewLoader(),
		appOpts: appOpts,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A small task tracker with an HTTP API and a terminal UI",
		Long: `todo keeps a list of tasks in a local SQLite database.

Run "todo serve" to expose the list over HTTP, and "todo tui" to work with a
running server interactively. The remaining commands read and write the
database directly.

EXAMPLES:
  todo add "Buy milk" -d "2%" -s pending   # Add a task
  todo list                               # Show every task as a table
  todo update-status 3 done               # Change a task's status
  todo remove 3                           # Delete a task after confirming
  todo export --format yaml > tasks.yaml  # Export all tasks
  todo summary                            # Count tasks per status
  todo db rollback                        # Revert the newest schema migration

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > TODO_* environment variables > config file > defaults

  The config file is ~/.todo/config.yaml unless --config is given. Keys map
  to environment variables by upper-casing and replacing dots, e.g.
  server.addr is TODO_SERVER_ADDR and database.dir is TODO_DATABASE_DIR.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.loadConfig(cmd)
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command and releases the database afterwards
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx as the parent of every command context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	defer r.Close()
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Close closes the database if a command opened it
func (r *RootCommand) Close() error {
	if r.repo == nil {
		return nil
	}
	err := r.repo.Close()
	r.repo = nil
	r.container = nil
	r.app = nil
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (default ~/.todo/config.yaml)")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TODO_DATABASE_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DATABASE_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TODO_DATABASE_QUERY_TIMEOUT)")

	// Server and client configuration
	flags.String("addr", "", "Address for serve to listen on (overrides TODO_SERVER_ADDR)")
	flags.String("server-url", "", "Server used by tui (overrides TODO_CLIENT_SERVER_URL)")

	// Application configuration
	flags.Duration("timeout", 0, "Per-command timeout (overrides TODO_APPLICATION_TIMEOUT)")
	flags.Bool("debug", false, "Enable debug logging (overrides TODO_APPLICATION_DEBUG)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task API over HTTP",
		Long:  "Open the database and serve the task API until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.serve(cmd.Context())
		},
	}

	// TUI command
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive task list",
		Long: `Open an interactive view of the tasks held by a running server.

Keys: j/k move, a add, e edit, d delete, r refresh, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runTUI()
		},
	}

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runCommand(cmd, r.getAppTimeout(), args, nil)
		},
	}

	// Add command
	var addDescription, addStatus string
	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a task",
		Long: `Add a task. The name may be given as several words.

Examples:
  todo add Buy milk
  todo add "Write report" -d "quarterly numbers" -s in-progress`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runCommand(cmd, r.getAppTimeout(), args, func(c Command) {
				add := c.(*AddCommand)
				add.Description = nil
				if cmd.Flags().Changed("description") {
					add.Description = &addDescription
				}
				add.Status = addStatus
			})
		},
	}
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Task description")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "", "Task status: pending, in-progress or done (default pending)")

	// Update status command
	updateStatusCmd := &cobra.Command{
		Use:   "update-status ID STATUS",
		Short: "Change the status of a task",
		Long:  "Change the status of a task, keeping its name and description.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runCommand(cmd, r.getAppTimeout(), args, nil)
		},
	}

	// Remove command
	var removeYes bool
	removeCmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a task",
		Long: `Delete a task. You are asked to confirm unless --yes is given.

This operation cannot be undone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Confirmation waits on the user, so allow longer
			return r.runCommand(cmd, r.getAppTimeout()*2, args, func(c Command) {
				c.(*RemoveCommand).Yes = removeYes
			})
		},
	}
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Delete without asking")

	// Export command
	var exportFormat string
	exportCmd := &cobra.Command{
		Use:   "export [csv|json|yaml]",
		Short: "Export all tasks",
		Long: `Write every task to stdout.

Supported formats:
  csv  - Comma-separated values with a header row. The has_description
         column tells an empty description from an absent one
  json - The same objects the HTTP API returns
  yaml - As json, in YAML`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runCommand(cmd, r.getAppTimeout(), args, func(c Command) {
				c.(*ExportCommand).Format = exportFormat
			})
		},
	}
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", FormatCSV, "Output format: csv, json or yaml")

	// Summary command
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Count tasks per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runCommand(cmd, r.getAppTimeout(), args, nil)
		},
	}

	// Database maintenance
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Maintain the local database",
	}
	dbCmd.AddCommand(&cobra.Command{
		Use:   "rollback",
		Short: "Revert the newest schema migration",
		Long: `Revert the newest applied schema migration of the local database.

Reverting the first migration drops the tasks table and every task in it.
The next command that opens the database migrates it again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.rollback(cmd)
		},
	})

	// Add all subcommands to root
	r.cmd.AddCommand(
		dbCmd,
		serveCmd,
		tuiCmd,
		listCmd,
		addCmd,
		updateStatusCmd,
		removeCmd,
		exportCmd,
		summaryCmd,
	)
}

// runCommand opens the application, lets configure copy flag values onto the
// registered command, and dispatches through App.Run.
func (r *RootCommand) runCommand(cmd *cobra.Command, timeout time.Duration, args []string, configure func(Command)) error {
	app, err := r.application()
	if err != nil {
		return err
	}

	if configure != nil {
		command, ok := app.Command(cmd.Name())
		if !ok {
			return fmt.Errorf("command %q is not registered", cmd.Name())
		}
		configure(command)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	return app.Run(ctx, append([]string{cmd.Name()}, args...))
}

func (r *RootCommand) rollback(cmd *cobra.Command) error {
	version, err := config.RollbackDatabase(r.config)
	if err != nil {
		return fmt.Errorf("failed to roll back database: %w", err)
	}
	if version == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No migrations to roll back.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rolled back migration %d.\n", version)
	return nil
}

func (r *RootCommand) serve(ctx context.Context) error {
	container, err := r.services()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := r.config.Server
	srv := api.NewServer(*container, api.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         logging.NewLogger(os.Stderr, r.config.Application.Debug),
	})
	return srv.ListenAndServe(ctx, api.ListenOptions{
		Addr:            cfg.Addr,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	})
}

func (r *RootCommand) runTUI() error {
	boundary := client.NewHTTPBoundary(r.config.Client.ServerURL, r.config.Client.Timeout)
	effects := client.NewEffects(boundary, r.taskValidator())
	return tui.Run(effects, tui.Options{Timeout: r.config.Client.Timeout})
}

// services opens the database on first use.
func (r *RootCommand) services() (*services.ServiceContainer, error) {
	if r.container != nil {
		return r.container, nil
	}

	logging.Debugf("opening database %s\n", r.config.GetDatabasePath())
	repo, err := config.CreateRepository(r.config)
	if err != nil {
		return nil, err
	}
	r.repo = repo

	container := NewServiceContainer(repo, r.taskValidator())
	r.container = &container
	return r.container, nil
}

func (r *RootCommand) application() (*App, error) {
	if r.app != nil {
		return r.app, nil
	}
	container, err := r.services()
	if err != nil {
		return nil, err
	}
	opts := append([]AppOption{WithTaskValidator(r.taskValidator())}, r.appOpts...)
	r.app = NewApp(*container, opts...)
	return r.app, nil
}

func (r *RootCommand) taskValidator() *validation.TaskValidator {
	return validation.NewTaskValidatorWithLimits(r.config.ValidationLimits())
}

// NewServiceContainer builds the services over repo.
func NewServiceContainer(repo sqlite.Repository, validator *validation.TaskValidator) services.ServiceContainer {
	taskService := services.NewTaskServiceWithValidator(repo, validator)
	return services.ServiceContainer{
		TaskService:      taskService,
		ReportingService: services.NewReportingService(taskService),
	}
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// loadConfig reads configuration and applies the flags the user set
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	flags := cmd.Flags()
	loader := r.loader

	if path, _ := flags.GetString("config"); path != "" {
		loader = loader.WithConfigFile(path)
	}

	overrides := &config.ConfigOverrides{}
	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("addr") {
		v, _ := flags.GetString("addr")
		overrides.ServerAddr = &v
	}
	if flags.Changed("server-url") {
		v, _ := flags.GetString("server-url")
		overrides.ServerURL = &v
	}
	if flags.Changed("timeout") {
		v, _ := flags.GetDuration("timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		overrides.Debug = &v
	}

	cfg, err := loader.LoadWithOverrides(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	r.config = cfg
	return nil
}
