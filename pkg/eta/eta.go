// Package eta estimates time remaining for a tracked progress value.
// It computes a rate from a small sliding window of timestamped
// observations and projects how long the remaining work will take.
package eta

import (
	"fmt"
	"math"
	"time"
)

// DefaultBufferSize is the sample capacity a Tracker uses when none is
// specified.
const DefaultBufferSize = 10

// Unknown is the display string for an estimate that cannot be made.
const Unknown = "--:--"

// Sample is one observation of cumulative progress at a point in time.
type Sample struct {
	Time  time.Time
	Value float64
}

// Result is an ETA query answer: the projected seconds remaining and
// its display form. OK is false when no estimate could be made, in
// which case Text is Unknown.
type Result struct {
	Seconds float64
	OK      bool
	Text    string
}

// Calculate returns the estimated seconds until current reaches total,
// based on the first and last samples in the window. The interior
// samples are intentionally unused: the window is small and the
// endpoint delta already averages over its span.
//
// The estimate is absent (ok false) when fewer than two samples exist,
// when no time has elapsed between the endpoints, or when the value has
// not increased. A current at or past total yields zero, not absent.
func Calculate(samples []Sample, current, total float64) (float64, bool) {
	if len(samples) < 2 {
		return 0, false
	}

	first := samples[0]
	last := samples[len(samples)-1]

	elapsed := last.Time.Sub(first.Time).Seconds()
	delta := last.Value - first.Value
	if elapsed <= 0 || delta <= 0 {
		return 0, false
	}

	rate := delta / elapsed
	remaining := total - current
	if remaining < 0 {
		remaining = 0
	}

	return math.Round(remaining / rate), true
}

// Format renders seconds remaining for display.
//
// Absent and non-finite values render as Unknown. Anything over a day
// renders as ">1d". At an hour or more the form is H:MM:SS; below that
// M:SS, with minutes unpadded and seconds zero-padded.
func Format(seconds float64, ok bool) string {
	if !ok || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return Unknown
	}
	if seconds > 24*60*60 {
		return ">1d"
	}

	s := int64(seconds)
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, (s%3600)/60, s%60)
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// Estimate composes Calculate and Format into a Result.
func Estimate(samples []Sample, current, total float64) Result {
	seconds, ok := Calculate(samples, current, total)
	return Result{
		Seconds: seconds,
		OK:      ok,
		Text:    Format(seconds, ok),
	}
}
