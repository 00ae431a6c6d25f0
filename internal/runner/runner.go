// Package runner executes a parsed step tree in declaration order and
// reports progress events with live ETA estimates.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ShayCichocki/pacer/pkg/eta"
	"github.com/ShayCichocki/pacer/pkg/steps"
)

// Config configures a Runner.
type Config struct {
	// Reporter receives progress events. Optional.
	Reporter Reporter

	// Tracker provides ETA estimation. A nil Tracker gets a fresh one
	// with the default window size.
	Tracker *eta.Tracker

	// ContinueOnError runs remaining steps after a failure instead of
	// stopping at the first one.
	ContinueOnError bool

	// Logger receives debug output. Optional.
	Logger *DebugLogger
}

// Runner walks the leaves of a step tree and executes them one at a
// time under the caller's context.
type Runner struct {
	reporter        Reporter
	tracker         *eta.Tracker
	continueOnError bool
	log             *DebugLogger
}

// New creates a Runner from cfg.
func New(cfg Config) *Runner {
	tracker := cfg.Tracker
	if tracker == nil {
		tracker = eta.NewTracker(0)
	}
	log := cfg.Logger
	if log == nil {
		log = &DebugLogger{}
	}
	return &Runner{
		reporter:        cfg.Reporter,
		tracker:         tracker,
		continueOnError: cfg.ContinueOnError,
		log:             log,
	}
}

// Run executes every leaf of nodes in depth-first declaration order.
// It stops at the first failure unless ContinueOnError is set, and at
// context cancellation always. The returned Summary is non-nil even
// when err is not.
func (r *Runner) Run(ctx context.Context, nodes []*steps.Node) (*Summary, error) {
	leaves := steps.Leaves(nodes)
	runID := uuid.New().String()[:8]
	started := time.Now()

	r.tracker.Reset()
	r.tracker.RecordAt(0, started)
	r.log.Log("run %s: %d steps", runID, len(leaves))

	total := len(leaves)
	r.emit(Event{
		Kind:  RunStarted,
		RunID: runID,
		Total: total,
		ETA:   r.tracker.Estimate(0, float64(total)),
	})

	summary := &Summary{
		RunID:   runID,
		Started: started,
		Total:   total,
	}

	var firstErr error
	for i, leaf := range leaves {
		if err := ctx.Err(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			break
		}

		r.emit(Event{
			Kind:   StepStarted,
			RunID:  runID,
			Node:   leaf,
			Status: StatusRunning,
			Index:  i + 1,
			Total:  total,
			ETA:    r.tracker.Estimate(float64(summary.Completed+summary.Failed), float64(total)),
		})
		r.log.Log("run %s: step %d/%d %q", runID, i+1, total, leaf.Key)

		stepStart := time.Now()
		err := leaf.Run(ctx)
		stepDur := time.Since(stepStart)

		status := StatusDone
		if err != nil {
			status = StatusFailed
			summary.Failed++
			if firstErr == nil {
				firstErr = fmt.Errorf("step %q: %w", leaf.Key, err)
			}
			r.log.Log("run %s: step %q failed: %v", runID, leaf.Key, err)
		} else {
			summary.Completed++
		}

		r.tracker.Record(float64(summary.Completed + summary.Failed))

		r.emit(Event{
			Kind:     StepFinished,
			RunID:    runID,
			Node:     leaf,
			Status:   status,
			Err:      err,
			Index:    i + 1,
			Total:    total,
			Duration: stepDur,
			ETA:      r.tracker.Estimate(float64(summary.Completed+summary.Failed), float64(total)),
		})

		if err != nil && !r.continueOnError {
			break
		}
	}

	summary.Duration = time.Since(started)
	r.log.Log("run %s: finished in %s (%d done, %d failed)",
		runID, summary.Duration, summary.Completed, summary.Failed)

	r.emit(Event{
		Kind:     RunFinished,
		RunID:    runID,
		Err:      firstErr,
		Total:    total,
		Duration: summary.Duration,
		ETA:      r.tracker.Estimate(float64(summary.Completed+summary.Failed), float64(total)),
	})

	return summary, firstErr
}

func (r *Runner) emit(e Event) {
	if r.reporter != nil {
		r.reporter(e)
	}
}
