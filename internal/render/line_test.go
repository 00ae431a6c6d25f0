package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/ShayCichocki/pacer/internal/runner"
	"github.com/ShayCichocki/pacer/pkg/eta"
	"github.com/ShayCichocki/pacer/pkg/steps"
)

func init() {
	// Keep assertions free of escape sequences.
	color.NoColor = true
}

func TestLine_SuccessfulStep(t *testing.T) {
	var buf bytes.Buffer
	report := NewLine(&buf, false).Reporter()

	node := &steps.Node{Key: "fetchDeps", Label: "Fetch deps", Indent: 1}
	report(runner.Event{
		Kind:     runner.StepFinished,
		Node:     node,
		Status:   runner.StatusDone,
		Duration: 1200 * time.Millisecond,
		ETA:      eta.Result{Seconds: 9, OK: true, Text: "0:09"},
	})

	got := buf.String()
	want := "  ✓ Fetch deps (1.2s, eta 0:09)\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLine_FailedStep(t *testing.T) {
	var buf bytes.Buffer
	report := NewLine(&buf, false).Reporter()

	node := &steps.Node{Key: "lint", Label: "Lint", Indent: 0}
	report(runner.Event{
		Kind:   runner.StepFinished,
		Node:   node,
		Status: runner.StatusFailed,
		Err:    errors.New("exit status 1"),
	})

	got := buf.String()
	if !strings.Contains(got, "✗ Lint: exit status 1") {
		t.Errorf("output = %q, want failure line", got)
	}
}

func TestLine_ASCIIGlyphs(t *testing.T) {
	var buf bytes.Buffer
	report := NewLine(&buf, true).Reporter()

	node := &steps.Node{Key: "build", Label: "Build"}
	report(runner.Event{
		Kind:     runner.StepFinished,
		Node:     node,
		Status:   runner.StatusDone,
		Duration: time.Second,
		ETA:      eta.Result{Text: eta.Unknown},
	})

	got := buf.String()
	if !strings.HasPrefix(got, "ok Build") {
		t.Errorf("output = %q, want ascii glyph prefix", got)
	}
	if strings.Contains(got, "✓") {
		t.Errorf("output = %q, should not contain unicode glyphs", got)
	}
}

func TestLine_RunLifecycle(t *testing.T) {
	var buf bytes.Buffer
	report := NewLine(&buf, false).Reporter()

	report(runner.Event{Kind: runner.RunStarted, Total: 2})
	report(runner.Event{Kind: runner.RunFinished, Total: 2, Duration: 3 * time.Second})

	got := buf.String()
	if !strings.Contains(got, "Running 2 steps") {
		t.Errorf("output = %q, want run header", got)
	}
	if !strings.Contains(got, "Completed 2 steps in 3s") {
		t.Errorf("output = %q, want summary line", got)
	}
}

func TestLine_FailedRunSummary(t *testing.T) {
	var buf bytes.Buffer
	report := NewLine(&buf, false).Reporter()

	report(runner.Event{
		Kind:     runner.RunFinished,
		Err:      errors.New("step \"lint\": exit status 1"),
		Duration: 2 * time.Second,
	})

	if got := buf.String(); !strings.Contains(got, "Run failed after 2s") {
		t.Errorf("output = %q, want failure summary", got)
	}
}

func TestLine_IgnoresStepStarted(t *testing.T) {
	var buf bytes.Buffer
	report := NewLine(&buf, false).Reporter()

	report(runner.Event{
		Kind:   runner.StepStarted,
		Node:   &steps.Node{Key: "x", Label: "X"},
		Status: runner.StatusRunning,
	})

	if buf.Len() != 0 {
		t.Errorf("StepStarted should produce no output, got %q", buf.String())
	}
}
