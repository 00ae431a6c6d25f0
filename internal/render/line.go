// Package render provides the plain, line-oriented progress renderer
// used when stdout is not a terminal or the user asked for --plain.
// One line per step transition, no cursor control, safe to pipe.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/ShayCichocki/pacer/internal/runner"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Line renders runner events as plain output lines.
type Line struct {
	w     io.Writer
	ascii bool

	ok   func(a ...interface{}) string
	bad  func(a ...interface{}) string
	dim  func(a ...interface{}) string
	bold func(a ...interface{}) string
}

// NewLine creates a line renderer writing to w. ASCII mode swaps the
// Unicode status glyphs for portable ones.
func NewLine(w io.Writer, ascii bool) *Line {
	return &Line{
		w:     w,
		ascii: ascii,
		ok:    color.New(color.FgGreen).SprintFunc(),
		bad:   color.New(color.FgRed).SprintFunc(),
		dim:   color.New(color.Faint).SprintFunc(),
		bold:  color.New(color.Bold).SprintFunc(),
	}
}

// Reporter returns the runner.Reporter feeding this renderer.
func (l *Line) Reporter() runner.Reporter {
	return l.handle
}

func (l *Line) handle(e runner.Event) {
	switch e.Kind {
	case runner.RunStarted:
		fmt.Fprintf(l.w, "%s\n", l.bold(fmt.Sprintf("Running %d steps", e.Total)))
	case runner.StepFinished:
		l.printStep(e)
	case runner.RunFinished:
		l.printSummary(e)
	}
}

func (l *Line) printStep(e runner.Event) {
	indent := strings.Repeat("  ", e.Node.Indent)
	if e.Status == runner.StatusFailed {
		fmt.Fprintf(l.w, "%s%s %s: %v\n", indent, l.bad(l.glyphFail()), e.Node.Label, e.Err)
		return
	}
	fmt.Fprintf(l.w, "%s%s %s %s\n",
		indent,
		l.ok(l.glyphOK()),
		e.Node.Label,
		l.dim(fmt.Sprintf("(%s, eta %s)", formatStepDuration(e.Duration), e.ETA.Text)),
	)
}

func (l *Line) printSummary(e runner.Event) {
	if e.Err != nil {
		fmt.Fprintf(l.w, "%s %s\n",
			l.bad(l.glyphFail()),
			fmt.Sprintf("Run failed after %s", formatStepDuration(e.Duration)))
		return
	}
	fmt.Fprintf(l.w, "%s %s\n",
		l.ok(l.glyphOK()),
		fmt.Sprintf("Completed %d steps in %s", e.Total, formatStepDuration(e.Duration)))
}

func (l *Line) glyphOK() string {
	if l.ascii {
		return "ok"
	}
	return "✓"
}

func (l *Line) glyphFail() string {
	if l.ascii {
		return "x"
	}
	return "✗"
}

// formatStepDuration trims durations to a display-friendly precision.
func formatStepDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
