// Package cli is the command line surface of staffrecords. Each invocation
// opens one connection, runs one command against fresh identity maps and
// prints a JSON envelope to stdout.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"staffrecords/src/app/response"
	"staffrecords/src/core/domain"
	"staffrecords/src/infra/config"
	"staffrecords/src/infra/logger"
)

// Version is set at build time
var Version = "0.1.0"

type app struct {
	out    io.Writer
	errOut io.Writer
	open   opener

	cfg   *config.Config
	log   *slog.Logger
	runID string

	// Global flags
	envFile   string
	logLevel  string
	logFormat string
	timeout   time.Duration
}

// Execute runs the CLI with the process arguments and returns the exit code.
func Execute(ctx context.Context) int {
	return execute(ctx, os.Args[1:], os.Stdout, os.Stderr, connect)
}

func execute(ctx context.Context, args []string, out, errOut io.Writer, open opener) (code int) {
	a := &app{out: out, errOut: errOut, open: open}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	defer func() {
		if r := recover(); r != nil {
			logger.Error(a.log, "panic recovered",
				"error", r,
				"stack", string(debug.Stack()),
			)
			code = response.Fail(out, a.runID, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := root.ExecuteContext(ctx); err != nil {
		if response.ExitCode(err) == response.ExitInternal {
			logger.Error(a.log, "command failed", "error", err)
		} else {
			logger.Warn(a.log, "command rejected", "error", err)
		}
		return response.Fail(out, a.runID, err)
	}
	return response.ExitOK
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "staffrecords",
		Short: "staffrecords - departments, employees and their performance reviews",
		Long: `staffrecords keeps departments, employees and yearly performance reviews
in PostgreSQL. Connection settings come from APP_DB_* environment variables.

Example:
  staffrecords schema create
  staffrecords department add Platform
  staffrecords employee add --name "Ana Li" --title Engineer --department 1
  staffrecords review add --employee 1 --year 2023 --summary "Good work"
  staffrecords employee reviews 1`,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Dotenv file read before the environment")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (or set APP_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text, json, plain (or set APP_LOG_FORMAT)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 30*time.Second, "Deadline for the whole command")

	root.AddCommand(
		a.schemaCommand(),
		a.departmentCommand(),
		a.employeeCommand(),
		a.reviewCommand(),
		a.healthCommand(),
	)
	return root
}

// setup loads configuration and builds the run-scoped logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	// the default file is optional; an explicit --env-file must exist
	if err := config.LoadDotEnv(a.envFile, !cmd.Flags().Changed("env-file")); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	a.cfg = cfg
	a.runID = uuid.NewString()
	a.log = logger.WithRunID(logger.NewWithWriter(cfg.Log, a.errOut), a.runID)
	a.log.Debug("command starting", "db_host", cfg.Database.Host, "db_name", cfg.Database.Name)
	return nil
}

// run connects, calls fn and prints its result.
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context, b *backend) (any, error)) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
	defer cancel()

	b, err := a.open(ctx, a.cfg, a.log)
	if err != nil {
		return err
	}
	defer b.close(context.Background())

	data, err := fn(ctx, b)
	if err != nil {
		return err
	}
	return response.OK(a.out, a.runID, data)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", fmt.Sprintf("must be a positive integer, got %q", arg))
	}
	return id, nil
}
