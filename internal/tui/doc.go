// Package tui provides the terminal user interface for pacer runs.
//
// The run view is read-only: it displays the step tree with live
// status glyphs, a spinner on the running step, an overall progress
// bar, and the current ETA. Users can only quit with 'q' or Ctrl+C,
// which cancels the run in flight.
//
// Usage:
//
//	program, app := tui.NewRunProgram(nodes, ascii, cancel)
//	go program.Run()
//
//	// Forward runner events
//	program.Send(tui.EventMsg{Event: ev})
//
//	// Signal completion
//	program.Send(tui.DoneMsg{Summary: summary, Err: err})
package tui
