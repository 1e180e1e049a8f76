package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/booktracker/internal/cmd/output"
	"github.com/agentstation/booktracker/internal/dispatch"
	"github.com/agentstation/booktracker/internal/errlog"
	"github.com/agentstation/booktracker/pkg/catalogs"
	"github.com/agentstation/booktracker/pkg/constants"
	"github.com/agentstation/booktracker/pkg/errors"
	"github.com/agentstation/booktracker/pkg/logging"
)

const usage = "booktracker <catalog-file> <operation>"

// Execute runs the booktracker CLI application with the given arguments.
// This is the main entry point called from main.go. The farewell line is
// printed after every run, including failed ones.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	err := rootCmd.ExecuteContext(ctx)
	if a.started || err != nil {
		output.PrintFarewell(a.farewellWriter())
	}
	return err
}

// createRootCommand creates the root cobra command.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     usage,
		Short:   "Flat-file library book catalog",
		Version: a.version,
		Long: `booktracker maintains a flat-file catalog of books, one record per line:

  title:author:isbn:copies

The operation argument selects what to do:
  title:author:isbn:copies   add the record, re-sort the catalog by title and save it
  13 digits                  search by ISBN
  anything else              search titles (case-insensitive substring)

Malformed records and errors are appended to the error log (errors.log).`,
		Example: `  booktracker books.txt "Dune:Frank Herbert:9780441013593:3"
  booktracker books.txt 9780441013593
  booktracker books.txt dune`,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: a.setupCommand,
		RunE:              a.run,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.Flags().SortFlags = false
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.booktracker.yaml)")
	rootCmd.PersistentFlags().String("error-log", "", "error log file (default \""+constants.DefaultErrorLog+"\")")
	rootCmd.PersistentFlags().StringP("format", "o", "", "output format: table, box, json, yaml, auto")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal diagnostics (shortcut for --log-level=error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("booktracker {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(a.flagError)

	return rootCmd
}

// setupCommand is called before the command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	a.started = true

	var configErr error
	if cmd.Flags().Changed("config") {
		config, err := LoadConfigFile(a.config.ConfigFile)
		if err != nil {
			configErr = err
		} else {
			a.config = config
		}
	}

	a.config.UpdateFromFlags(
		mustGetBool(cmd, "verbose"),
		mustGetBool(cmd, "quiet"),
		mustGetBool(cmd, "no-color"),
		mustGetString(cmd, "format"),
		mustGetString(cmd, "log-level"),
		mustGetString(cmd, "error-log"),
	)

	logger := NewLogger(a.config)
	a.logger = &logger

	if configErr != nil {
		return a.usageFailure("cannot read config file: " + configErr.Error())
	}
	return nil
}

// run performs one load, one operation and the report.
func (a *App) run(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(a.config.Format)
	if err != nil {
		return a.usageFailure(err.Error())
	}
	format = output.DetectFormat(format)

	if len(args) < 2 {
		return a.usageFailure("expected <catalog-file> and <operation>")
	}
	if len(args) > 2 {
		a.logger.Warn().Strs("ignored", args[2:]).Msg("Extra arguments ignored")
	}

	stats := &catalogs.Stats{}
	sink := errlog.New(a.config.ErrorLog, stats, errlog.WithLogger(a.logger))

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	report := dispatch.NewRunner(sink, stats).Run(ctx, args[0], args[1])

	return a.render(format, report)
}

// usageFailure logs a usage error under Main, prints the statistics of the
// aborted run and returns the error.
func (a *App) usageFailure(message string) error {
	stats := &catalogs.Stats{}
	err := errors.NewUsageError(usage, message)
	errlog.New(a.config.ErrorLog, stats, errlog.WithLogger(a.logger)).LogError(constants.MainContext, err)

	report := output.NewReport("", "")
	report.Statistics = *stats
	if rerr := a.render(a.reportFormat(), report); rerr != nil {
		a.logger.Error().Err(rerr).Msg("Failed to write report")
	}
	return err
}

// flagError turns a flag parsing failure into a usage failure.
func (a *App) flagError(_ *cobra.Command, err error) error {
	return a.usageFailure(err.Error())
}

// reportFormat resolves the configured format, falling back to table when it is invalid.
func (a *App) reportFormat() output.Format {
	format, err := output.ParseFormat(a.config.Format)
	if err != nil {
		return output.FormatTable
	}
	return output.DetectFormat(format)
}

func (a *App) render(format output.Format, report *output.Report) error {
	if err := output.NewFormatter(format).Format(a.stdout, report); err != nil {
		return errors.WrapIO("write", "stdout", err)
	}
	return nil
}

// farewellWriter keeps structured output machine-readable by sending the
// farewell to stderr for json and yaml.
func (a *App) farewellWriter() io.Writer {
	if a.reportFormat().Structured() {
		return a.stderr
	}
	return a.stdout
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
