package view

import (
	"sync"
	"testing"

	"facetgrid/pkg/types"
)

func TestSnapshot_LastWriteWins(t *testing.T) {
	s := NewSnapshot()

	s.SetControlPressed("a", true)
	s.SetControlPressed("a", false)
	if s.Pressed("a") {
		t.Error("expected last write to win")
	}

	s.SetBadge("a", 3, true)
	if b := s.BadgeFor("a"); b.Count != 3 || !b.Shown {
		t.Errorf("badge = %+v", b)
	}

	s.SetItemPhase("i", types.ItemHiding)
	if s.Phase("i") != types.ItemHiding {
		t.Errorf("phase = %v", s.Phase("i"))
	}
}

func TestSnapshot_ControlsDefaultVisible(t *testing.T) {
	s := NewSnapshot()
	if !s.ControlVisible("never-painted") {
		t.Error("unpainted controls should default to visible")
	}
	s.SetControlVisible("c", false)
	if s.ControlVisible("c") {
		t.Error("explicitly hidden control reported visible")
	}
}

// Hide timers fire off the interaction goroutine; concurrent writes and
// reads must be safe.
func TestSnapshot_ConcurrentAccess(t *testing.T) {
	s := NewSnapshot()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.SetItemPhase("i", types.ItemShown)
				_ = s.Phase("i")
				s.SetVisibleCount(j)
				_ = s.VisibleCount()
			}
		}()
	}
	wg.Wait()
}
