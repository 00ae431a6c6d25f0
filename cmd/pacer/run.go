package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/pacer/internal/config"
	"github.com/ShayCichocki/pacer/internal/exec"
	"github.com/ShayCichocki/pacer/internal/history"
	"github.com/ShayCichocki/pacer/internal/manifest"
	"github.com/ShayCichocki/pacer/internal/render"
	"github.com/ShayCichocki/pacer/internal/runner"
	"github.com/ShayCichocki/pacer/internal/tui"
	"github.com/ShayCichocki/pacer/pkg/eta"
	"github.com/ShayCichocki/pacer/pkg/steps"
)

var (
	runPlain    bool
	runWatch    bool
	runContinue bool
)

var runCmd = &cobra.Command{
	Use:   "run <manifest>",
	Short: "Run a task manifest with live progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runManifest(args[0])
	},
}

func init() {
	runCmd.Flags().BoolVar(&runPlain, "plain", false, "Line output instead of the TUI")
	runCmd.Flags().BoolVar(&runWatch, "watch", false, "Re-run when the manifest changes (implies --plain)")
	runCmd.Flags().BoolVar(&runContinue, "continue-on-error", false, "Run remaining steps after a failure")
}

func runManifest(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if runWatch {
		return watchAndRun(ctx, path, cfg)
	}

	summary, err := executeOnce(ctx, path, cfg)
	recordHistory(cfg, summary)
	return err
}

// executeOnce loads, parses, and runs the manifest a single time.
func executeOnce(ctx context.Context, path string, cfg *config.Config) (*runner.Summary, error) {
	sh := exec.NewRunner(cfg.Run.Shell)
	def, err := manifest.Load(path, sh, filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	nodes := steps.Parse(def)
	if len(steps.Leaves(nodes)) == 0 {
		return nil, fmt.Errorf("manifest %s declares no runnable steps", path)
	}

	logger, err := runner.NewDebugLogger(cfg.Run.LogFile)
	if err != nil {
		return nil, err
	}
	defer logger.Close()

	tracker := eta.NewTracker(cfg.ETA.BufferSize)

	if runPlain || runWatch || !render.IsTerminal(os.Stdout) {
		line := render.NewLine(os.Stdout, cfg.TUI.ASCII)
		r := runner.New(runner.Config{
			Reporter:        line.Reporter(),
			Tracker:         tracker,
			ContinueOnError: runContinue,
			Logger:          logger,
		})
		return r.Run(ctx, nodes)
	}

	return executeWithTUI(ctx, nodes, tracker, logger, cfg)
}

// executeWithTUI runs the tree behind the bubbletea run view. The run
// happens in a goroutine; the view owns the terminal until it exits.
func executeWithTUI(ctx context.Context, nodes []*steps.Node, tracker *eta.Tracker, logger *runner.DebugLogger, cfg *config.Config) (*runner.Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program, _ := tui.NewRunProgram(nodes, cfg.TUI.ASCII, cancel)

	r := runner.New(runner.Config{
		Reporter: func(e runner.Event) {
			program.Send(tui.EventMsg{Event: e})
		},
		Tracker:         tracker,
		ContinueOnError: runContinue,
		Logger:          logger,
	})

	var (
		summary *runner.Summary
		runErr  error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		summary, runErr = r.Run(ctx, nodes)
		program.Send(tui.DoneMsg{Summary: summary, Err: runErr})
	}()

	if _, err := program.Run(); err != nil {
		cancel()
		<-done
		return summary, fmt.Errorf("run tui: %w", err)
	}
	cancel()
	<-done

	return summary, runErr
}

// watchAndRun runs the manifest, then re-runs it every time the file
// changes, until interrupted.
func watchAndRun(ctx context.Context, path string, cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops
	// a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	for {
		summary, err := executeOnce(ctx, path, cfg)
		recordHistory(cfg, summary)
		if err != nil && ctx.Err() != nil {
			return nil
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "pacer: %v\n", err)
		}
		fmt.Printf("Watching %s for changes...\n", path)

		if !awaitChange(ctx, watcher, target) {
			return nil
		}
	}
}

// awaitChange blocks until the watched manifest is written or the
// context ends. Returns false when the watch should stop.
func awaitChange(ctx context.Context, watcher *fsnotify.Watcher, target string) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-watcher.Events:
			if !ok {
				return false
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || abs != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// Editors fire bursts of events per save.
			time.Sleep(200 * time.Millisecond)
			drainEvents(watcher)
			return true
		case err, ok := <-watcher.Errors:
			if !ok {
				return false
			}
			fmt.Fprintf(os.Stderr, "pacer: watch error: %v\n", err)
		}
	}
}

func drainEvents(watcher *fsnotify.Watcher) {
	for {
		select {
		case <-watcher.Events:
		default:
			return
		}
	}
}

// recordHistory persists a run summary. Failures are warnings, never
// fatal: history must not break a run.
func recordHistory(cfg *config.Config, summary *runner.Summary) {
	if summary == nil || !cfg.History.Enabled {
		return
	}

	path := cfg.History.Path
	if path == "" {
		path = history.DefaultPath()
	}

	db, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pacer: open history: %v\n", err)
		return
	}
	defer db.Close()

	err = db.RecordRun(history.Run{
		ID:        summary.RunID,
		Started:   summary.Started,
		Duration:  summary.Duration,
		Total:     summary.Total,
		Completed: summary.Completed,
		Failed:    summary.Failed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pacer: record history: %v\n", err)
	}
}
