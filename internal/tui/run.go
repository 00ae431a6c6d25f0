package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/pacer/internal/runner"
	"github.com/ShayCichocki/pacer/pkg/eta"
	"github.com/ShayCichocki/pacer/pkg/steps"
)

// EventMsg wraps a runner event for the run view.
type EventMsg struct {
	Event runner.Event
}

// DoneMsg is sent when the run goroutine finishes.
type DoneMsg struct {
	Summary *runner.Summary
	Err     error
}

// RunApp displays a live step run.
type RunApp struct {
	flat   []*steps.Node
	status map[*steps.Node]runner.Status

	spin spinner.Model
	bar  progress.Model

	total     int
	completed int
	failed    int
	etaRes    eta.Result

	done     bool
	err      error
	quitting bool
	width    int
	ascii    bool

	// onQuit cancels the run when the user quits mid-flight.
	onQuit func()

	headerStyle  lipgloss.Style
	groupStyle   lipgloss.Style
	pendingStyle lipgloss.Style
	runningStyle lipgloss.Style
	doneStyle    lipgloss.Style
	failStyle    lipgloss.Style
	footerStyle  lipgloss.Style
	errorStyle   lipgloss.Style
	helpStyle    lipgloss.Style
}

// NewRunApp creates a run view for the given parsed tree. onQuit is
// called once if the user quits before the run finishes.
func NewRunApp(nodes []*steps.Node, ascii bool, onQuit func()) *RunApp {
	flat := steps.Flatten(nodes)
	status := make(map[*steps.Node]runner.Status, len(flat))
	for _, n := range flat {
		if n.IsLeaf() {
			status[n] = runner.StatusPending
		}
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &RunApp{
		flat:   flat,
		status: status,
		spin:   spin,
		bar:    progress.New(progress.WithDefaultGradient()),
		total:  len(steps.Leaves(nodes)),
		etaRes: eta.Result{Text: eta.Unknown},
		width:  80,
		ascii:  ascii,
		onQuit: onQuit,

		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),

		groupStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),

		pendingStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		runningStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		doneStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")),

		failStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		footerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),

		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// Init implements tea.Model.
func (a *RunApp) Init() tea.Cmd {
	return a.spin.Tick
}

// Update implements tea.Model.
func (a *RunApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if a.done {
				return a, tea.Quit
			}
			if !a.quitting && a.onQuit != nil {
				a.onQuit()
			}
			a.quitting = true
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.bar.Width = msg.Width - 24
		if a.bar.Width > 50 {
			a.bar.Width = 50
		}
		if a.bar.Width < 10 {
			a.bar.Width = 10
		}

	case spinner.TickMsg:
		if a.done {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case EventMsg:
		a.applyEvent(msg.Event)

	case DoneMsg:
		a.done = true
		a.err = msg.Err
		if a.quitting {
			return a, tea.Quit
		}
	}

	return a, nil
}

func (a *RunApp) applyEvent(e runner.Event) {
	a.etaRes = e.ETA
	if e.Total > 0 {
		a.total = e.Total
	}

	switch e.Kind {
	case runner.StepStarted:
		a.status[e.Node] = runner.StatusRunning
	case runner.StepFinished:
		a.status[e.Node] = e.Status
		if e.Status == runner.StatusFailed {
			a.failed++
		} else {
			a.completed++
		}
	}
}

// View implements tea.Model.
func (a *RunApp) View() string {
	var b strings.Builder

	b.WriteString(a.headerStyle.Render("pacer"))
	b.WriteString("\n\n")

	for _, n := range a.flat {
		b.WriteString(a.renderNode(n))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())
	b.WriteString("\n")

	return b.String()
}

func (a *RunApp) renderNode(n *steps.Node) string {
	indent := strings.Repeat("  ", n.Indent)
	if n.IsGroup() {
		return indent + a.groupStyle.Render(n.Label)
	}

	switch a.status[n] {
	case runner.StatusRunning:
		return indent + a.spin.View() + " " + a.runningStyle.Render(n.Label)
	case runner.StatusDone:
		return indent + a.doneStyle.Render(a.glyphDone()+" "+n.Label)
	case runner.StatusFailed:
		return indent + a.failStyle.Render(a.glyphFail()+" "+n.Label)
	default:
		return indent + a.pendingStyle.Render(a.glyphPending()+" "+n.Label)
	}
}

func (a *RunApp) renderFooter() string {
	var b strings.Builder

	pct := float64(0)
	if a.total > 0 {
		pct = float64(a.completed+a.failed) / float64(a.total)
	}
	b.WriteString(a.bar.ViewAs(pct))
	b.WriteString(a.footerStyle.Render(
		fmt.Sprintf("  %d/%d  eta %s", a.completed+a.failed, a.total, a.etaRes.Text)))
	b.WriteString("\n")

	switch {
	case a.done && a.err != nil:
		b.WriteString(a.errorStyle.Render(fmt.Sprintf("Error: %v", a.err)))
		b.WriteString(a.helpStyle.Render("  Press q to exit"))
	case a.done:
		b.WriteString(a.doneStyle.Render("Done!"))
		b.WriteString(a.helpStyle.Render("  Press q to exit"))
	case a.quitting:
		b.WriteString(a.helpStyle.Render("Cancelling..."))
	default:
		b.WriteString(a.helpStyle.Render("Press q to cancel"))
	}

	return b.String()
}

func (a *RunApp) glyphDone() string {
	if a.ascii {
		return "ok"
	}
	return "✓"
}

func (a *RunApp) glyphFail() string {
	if a.ascii {
		return "x"
	}
	return "✗"
}

func (a *RunApp) glyphPending() string {
	if a.ascii {
		return "-"
	}
	return "•"
}

// NewRunProgram creates a Bubbletea program for the run view.
func NewRunProgram(nodes []*steps.Node, ascii bool, onQuit func()) (*tea.Program, *RunApp) {
	app := NewRunApp(nodes, ascii, onQuit)
	p := tea.NewProgram(app, tea.WithAltScreen())
	return p, app
}
