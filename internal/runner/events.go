package runner

import (
	"time"

	"github.com/ShayCichocki/pacer/pkg/eta"
	"github.com/ShayCichocki/pacer/pkg/steps"
)

// Status is the lifecycle state of a step within a run.
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

// EventKind identifies what an Event describes.
type EventKind string

const (
	// RunStarted is emitted once before the first step.
	RunStarted EventKind = "run_started"
	// StepStarted is emitted when a leaf begins executing.
	StepStarted EventKind = "step_started"
	// StepFinished is emitted when a leaf completes or fails.
	StepFinished EventKind = "step_finished"
	// RunFinished is emitted once after the last step.
	RunFinished EventKind = "run_finished"
)

// Event is a progress notification from a run. Node is nil on
// run-level events. ETA carries the live estimate as of the event.
type Event struct {
	Kind   EventKind
	RunID  string
	Node   *steps.Node
	Status Status
	Err    error

	// Index is the 1-based position of the step among the run's
	// leaves; Total is the leaf count. Zero on RunStarted.
	Index int
	Total int

	// Duration is the step duration on StepFinished and the whole run
	// duration on RunFinished.
	Duration time.Duration

	ETA eta.Result
}

// Reporter receives every event a run emits, in order, from the run's
// goroutine. Reporters must not block for long; the run waits on them.
type Reporter func(Event)

// Summary describes a completed run.
type Summary struct {
	RunID     string
	Started   time.Time
	Duration  time.Duration
	Total     int
	Completed int
	Failed    int
}
