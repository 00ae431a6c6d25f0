package eta

import "time"

// Tracker accumulates progress samples in a bounded FIFO window and
// answers ETA queries against it. It holds no locks: a Tracker belongs
// to a single goroutine, and sharing one requires external
// synchronization.
type Tracker struct {
	capacity int
	samples  []Sample
}

// NewTracker creates a tracker holding at most capacity samples.
// A capacity of zero or less means DefaultBufferSize.
func NewTracker(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultBufferSize
	}
	return &Tracker{
		capacity: capacity,
		samples:  make([]Sample, 0, capacity),
	}
}

// Record appends an observation of the progress value taken now.
func (t *Tracker) Record(value float64) {
	t.RecordAt(value, time.Now())
}

// RecordAt appends an observation taken at the given time. When the
// window is full the oldest sample is evicted.
func (t *Tracker) RecordAt(value float64, at time.Time) {
	s := Sample{Time: at, Value: value}
	if len(t.samples) == t.capacity {
		copy(t.samples, t.samples[1:])
		t.samples[len(t.samples)-1] = s
		return
	}
	t.samples = append(t.samples, s)
}

// Samples returns a copy of the current window, oldest first.
func (t *Tracker) Samples() []Sample {
	out := make([]Sample, len(t.samples))
	copy(out, t.samples)
	return out
}

// Len returns the number of samples currently held.
func (t *Tracker) Len() int {
	return len(t.samples)
}

// Capacity returns the configured window size.
func (t *Tracker) Capacity() int {
	return t.capacity
}

// Reset discards all samples. The next ETA query is absent until two
// new samples arrive.
func (t *Tracker) Reset() {
	t.samples = t.samples[:0]
}

// Estimate answers an ETA query for the given current and total
// progress values against the tracked window.
func (t *Tracker) Estimate(current, total float64) Result {
	return Estimate(t.samples, current, total)
}
