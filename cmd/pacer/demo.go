package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/pacer/internal/config"
	"github.com/ShayCichocki/pacer/internal/render"
	"github.com/ShayCichocki/pacer/internal/runner"
	"github.com/ShayCichocki/pacer/pkg/eta"
	"github.com/ShayCichocki/pacer/pkg/steps"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a built-in step tree to preview the progress display",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runDemo()
	},
}

// sleep is demo work: it waits, but honors cancellation.
func sleep(d time.Duration) steps.Work {
	return func(ctx context.Context) error {
		select {
		case <-time.After(d):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func demoDef() steps.Def {
	return steps.Def{
		{Key: "loadModules", Value: steps.Do(sleep(600 * time.Millisecond))},
		{Key: "parseMarkdown", Value: steps.Do(sleep(400 * time.Millisecond))},
		{Key: "buildAssets", Value: steps.Group(steps.Def{
			{Key: "compileStyles", Value: steps.Do(sleep(700 * time.Millisecond))},
			{Key: "bundle", Value: steps.Labeled("Bundle scripts", sleep(900*time.Millisecond))},
		})},
		{Key: "publish", Value: steps.Do(sleep(500 * time.Millisecond))},
	}
}

func runDemo() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	nodes := steps.Parse(demoDef())

	logger, err := runner.NewDebugLogger(cfg.Run.LogFile)
	if err != nil {
		return err
	}
	defer logger.Close()

	tracker := eta.NewTracker(cfg.ETA.BufferSize)

	if !render.IsTerminal(os.Stdout) {
		line := render.NewLine(os.Stdout, cfg.TUI.ASCII)
		r := runner.New(runner.Config{
			Reporter: line.Reporter(),
			Tracker:  tracker,
			Logger:   logger,
		})
		_, err = r.Run(ctx, nodes)
		return err
	}

	_, err = executeWithTUI(ctx, nodes, tracker, logger, cfg)
	return err
}
