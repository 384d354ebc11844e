package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/robotomize/go-allure-owners/internal/launch"
	"github.com/robotomize/go-allure-owners/internal/logging"
	"github.com/robotomize/go-allure-owners/internal/report"
)

var debounceFlag time.Duration

func init() {
	watchCmd.Flags().DurationVarP(
		&debounceFlag,
		"debounce",
		"d",
		500*time.Millisecond,
		"quiet period after the last results change before regenerating",
	)

	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:          "watch",
	Long:         "Regenerate the owners report whenever the allure results change. With --forward-exit the exit code reflects the last report",
	Short:        "watch results directories",
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

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("fsnotify.NewWatcher: %w", err)
		}
		defer watcher.Close()

		for _, dir := range cfg.Results {
			if err = watcher.Add(dir); err != nil {
				return fmt.Errorf("watcher Add %s: %w", dir, err)
			}
		}

		logger := newLogger(cmd)

		// last is the summary of the latest successful generation, --forward-exit applies to it on stop.
		var last report.Summary
		generate := func() {
			summary, genErr := generator.Generate(ctx)
			if genErr != nil {
				logger.Errorf("generate: %v", genErr)
				return
			}
			last = summary

			_, _ = fmt.Fprintf(
				cmd.OutOrStdout(), "Owners report updated: %d results, %d owners\n",
				summary.Results, summary.Widget.Total,
			)
		}

		generate()

		if err = watch(ctx, watcher, debounceFlag, logger, generate); err != nil {
			return err
		}

		forwardExit(cmd, last)

		return nil
	},
}

// watch calls fn once per burst of result file changes, after the burst has been quiet for debounce.
// It returns when ctx is done or the watcher is closed.
func watch(ctx context.Context, watcher *fsnotify.Watcher, debounce time.Duration, logger logging.Logger, fn func()) error {
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isResultEvent(event) {
				continue
			}

			logger.Debugf("results changed: %s %s", event.Op, event.Name)
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Errorf("watcher: %v", err)
		case <-timer.C:
			fn()
		}
	}
}

func isResultEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	ok, err := filepath.Match(launch.ResultPattern, filepath.Base(event.Name))

	return err == nil && ok
}
