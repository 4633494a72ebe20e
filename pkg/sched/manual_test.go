package sched

import (
	"testing"
	"time"
)

func TestManual_FiresInDueOrder(t *testing.T) {
	m := NewManual()
	var fired []string
	m.Schedule(30*time.Millisecond, func() { fired = append(fired, "c") })
	m.Schedule(10*time.Millisecond, func() { fired = append(fired, "a") })
	m.Schedule(20*time.Millisecond, func() { fired = append(fired, "b") })

	m.Advance(5 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatalf("fired too early: %v", fired)
	}
	m.Advance(25 * time.Millisecond)
	if got := len(fired); got != 2 {
		t.Fatalf("fired %d tasks, want 2", got)
	}
	if fired[0] != "a" || fired[1] != "b" {
		t.Errorf("wrong order: %v", fired)
	}
	m.Advance(time.Hour)
	if fired[len(fired)-1] != "c" {
		t.Errorf("last task missing: %v", fired)
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", m.Pending())
	}
}

func TestManual_Cancel(t *testing.T) {
	m := NewManual()
	fired := false
	token := m.Schedule(time.Millisecond, func() { fired = true })
	m.Cancel(token)
	m.Advance(time.Second)
	if fired {
		t.Error("cancelled task fired")
	}
	// cancelling again is a no-op
	m.Cancel(token)
}

func TestManual_InsertionOrderOnTies(t *testing.T) {
	m := NewManual()
	var fired []int
	for i := 0; i < 4; i++ {
		i := i
		m.Schedule(10*time.Millisecond, func() { fired = append(fired, i) })
	}
	m.Advance(10 * time.Millisecond)
	for i, got := range fired {
		if got != i {
			t.Fatalf("tie order broken: %v", fired)
		}
	}
}
