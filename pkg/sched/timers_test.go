package sched

import (
	"testing"
	"time"
)

func TestTimers_ScheduleAndFire(t *testing.T) {
	s := NewTimers()
	done := make(chan struct{})
	s.Schedule(5*time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled task never fired")
	}
}

func TestTimers_Cancel(t *testing.T) {
	s := NewTimers()
	fired := make(chan struct{}, 1)
	token := s.Schedule(20*time.Millisecond, func() { fired <- struct{}{} })
	s.Cancel(token)
	select {
	case <-fired:
		t.Error("cancelled task fired")
	case <-time.After(60 * time.Millisecond):
	}
	// cancel after the fact is a no-op
	s.Cancel(token)
	s.Cancel("unknown")
}
