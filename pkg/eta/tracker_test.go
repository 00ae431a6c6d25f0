package eta

import (
	"testing"
	"time"
)

func TestNewTracker_DefaultCapacity(t *testing.T) {
	if got := NewTracker(0).Capacity(); got != DefaultBufferSize {
		t.Errorf("Capacity() = %d, want %d", got, DefaultBufferSize)
	}
	if got := NewTracker(-1).Capacity(); got != DefaultBufferSize {
		t.Errorf("Capacity() = %d, want %d", got, DefaultBufferSize)
	}
	if got := NewTracker(3).Capacity(); got != 3 {
		t.Errorf("Capacity() = %d, want 3", got)
	}
}

func TestTracker_EvictsOldestFirst(t *testing.T) {
	tr := NewTracker(3)
	base := time.UnixMilli(0)
	for i := 0; i < 5; i++ {
		tr.RecordAt(float64(i), base.Add(time.Duration(i)*time.Second))
	}

	samples := tr.Samples()
	if len(samples) != 3 {
		t.Fatalf("len(samples) = %d, want 3", len(samples))
	}
	for i, want := range []float64{2, 3, 4} {
		if samples[i].Value != want {
			t.Errorf("samples[%d].Value = %v, want %v", i, samples[i].Value, want)
		}
	}
}

func TestTracker_SamplesReturnsCopy(t *testing.T) {
	tr := NewTracker(3)
	tr.RecordAt(1, time.UnixMilli(1000))

	samples := tr.Samples()
	samples[0].Value = 999

	if tr.Samples()[0].Value != 1 {
		t.Error("mutating the returned slice should not affect the tracker")
	}
}

func TestTracker_Estimate(t *testing.T) {
	tr := NewTracker(10)
	tr.RecordAt(0, time.UnixMilli(1000))
	tr.RecordAt(10, time.UnixMilli(2000))

	res := tr.Estimate(10, 100)
	if !res.OK {
		t.Fatal("expected an estimate")
	}
	if res.Seconds != 9 {
		t.Errorf("Seconds = %v, want 9", res.Seconds)
	}
}

func TestTracker_EstimateUsesWindowEndpoints(t *testing.T) {
	// With capacity 2, older samples fall out and the rate reflects
	// only the surviving pair.
	tr := NewTracker(2)
	tr.RecordAt(0, time.UnixMilli(0))
	tr.RecordAt(10, time.UnixMilli(1000))
	tr.RecordAt(30, time.UnixMilli(2000))

	res := tr.Estimate(30, 100)
	if !res.OK {
		t.Fatal("expected an estimate")
	}
	// Surviving window: 10 -> 30 over one second, 70 remaining.
	if res.Seconds != 4 {
		t.Errorf("Seconds = %v, want 4", res.Seconds)
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker(5)
	tr.RecordAt(0, time.UnixMilli(1000))
	tr.RecordAt(10, time.UnixMilli(2000))
	tr.Reset()

	if tr.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", tr.Len())
	}
	if res := tr.Estimate(10, 100); res.OK {
		t.Error("estimate after Reset should be absent")
	}
	if res := tr.Estimate(10, 100); res.Text != Unknown {
		t.Errorf("Text after Reset = %q, want %q", res.Text, Unknown)
	}
}

func TestTracker_Record_UsesWallClock(t *testing.T) {
	tr := NewTracker(5)
	before := time.Now()
	tr.Record(1)
	after := time.Now()

	s := tr.Samples()[0]
	if s.Time.Before(before) || s.Time.After(after) {
		t.Errorf("Record timestamp %v outside [%v, %v]", s.Time, before, after)
	}
	if s.Value != 1 {
		t.Errorf("Value = %v, want 1", s.Value)
	}
}
