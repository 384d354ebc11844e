package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/robotomize/go-allure-owners/internal/config"
	"github.com/robotomize/go-allure-owners/internal/exporter"
	"github.com/robotomize/go-allure-owners/internal/fs"
	"github.com/robotomize/go-allure-owners/internal/launch"
	"github.com/robotomize/go-allure-owners/internal/logging"
	"github.com/robotomize/go-allure-owners/internal/report"
)

var (
	verboseFlag      bool
	configFlag       string
	resultsDirsFlag  []string
	outputDirFlag    string
	widgetLimitFlag  int
	indentFlag       string
	forwardExitFlag  bool
	silentOutputFlag bool
)

// exit is replaced in tests.
var exit = os.Exit

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verboseFlag,
		"verbose",
		"v",
		false,
		"verbose",
	)
	rootCmd.PersistentFlags().StringVarP(
		&configFlag,
		"config",
		"c",
		"",
		"path to the config file, defaults to "+config.FileName+" in the working directory or its parents",
	)
	rootCmd.PersistentFlags().StringSliceVarP(
		&resultsDirsFlag,
		"results",
		"r",
		nil,
		"allure results directories, one launch each: -r <results-path> -r <results-path>",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputDirFlag,
		"output",
		"o",
		"",
		"output path to the allure report: -o <report-path>",
	)
	rootCmd.PersistentFlags().IntVarP(
		&widgetLimitFlag,
		"widget-limit",
		"",
		config.DefaultWidgetLimit,
		"number of owners shown on the widget",
	)
	rootCmd.PersistentFlags().StringVarP(
		&indentFlag,
		"indent",
		"",
		"",
		"indent of the written json documents: --indent '  '",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&forwardExitFlag,
		"forward-exit",
		"e",
		false,
		"exit with code 1 if any result is failed or broken",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&silentOutputFlag,
		"silent",
		"s",
		false,
		"silent owners report output(JSON)",
	)
}

var rootCmd = &cobra.Command{
	Use:          "ownersctl",
	Long:         "Generate the owners tab and widget of an allure report",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		generator, err := newGenerator(cmd, cfg)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Trying to generate the owners report\n")
		summary, err := generator.Generate(ctx)
		if err != nil {
			return fmt.Errorf("report Generate: %w", err)
		}

		if verboseFlag && summary.ReadErr != nil {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Read allure results: %s\n", summary.ReadErr.Error())
		}

		_, _ = fmt.Fprintf(
			cmd.OutOrStdout(), "Owners report completed successfully: %d launches, %d results, %d owners\n",
			summary.Launches, summary.Results, summary.Widget.Total,
		)

		forwardExit(cmd, summary)

		return nil
	},
}

// forwardExit exits with code 1 if --forward-exit is set and the report holds a failed or broken result.
func forwardExit(cmd *cobra.Command, summary report.Summary) {
	if forwardExitFlag && summary.Leaves > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "One or more tests failed. exiting with error 1\n")
		exit(1)
	}
}

// loadConfig reads the config file and applies the flags the user set on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("os.Getwd: %w", err)
	}

	cfg, err := config.Load(configFlag, pwd)
	if err != nil {
		return nil, fmt.Errorf("config Load: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("results") {
		cfg.Results = resultsDirsFlag
	}

	if flags.Changed("output") {
		cfg.Output = outputDirFlag
	}

	if flags.Changed("widget-limit") {
		cfg.WidgetLimit = widgetLimitFlag
	}

	if flags.Changed("indent") {
		cfg.Indent = indentFlag
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config Validate: %w", err)
	}

	return cfg, nil
}

func newLogger(cmd *cobra.Command) logging.Logger {
	logLevel := logging.INFO
	if verboseFlag {
		logLevel = logging.DEBUG
	}

	return logging.New(cmd.ErrOrStderr(), logLevel)
}

func newGenerator(cmd *cobra.Command, cfg *config.Config) (*report.Generator, error) {
	logger := newLogger(cmd)

	dirs, err := fs.Dirs(cfg.Results...)
	if err != nil {
		return nil, fmt.Errorf("results directories: %w", err)
	}

	outputWriter := cmd.OutOrStdout()
	if silentOutputFlag {
		outputWriter = io.Discard
	}

	writer := exporter.NewWriter(
		exporter.WriteToDir(cfg.Output),
		exporter.WriteReportTo(outputWriter),
		exporter.WithIndent(cfg.Indent),
	)

	reader := launch.NewReader(dirs, launch.WithLogger(logger))

	return report.New(reader, writer, report.WithWidgetLimit(cfg.WidgetLimit), report.WithLogger(logger)), nil
}
