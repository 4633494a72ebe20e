package view

import (
	"sync"

	"facetgrid/pkg/types"
)

// Badge is the last-pushed badge state of one control.
type Badge struct {
	Count int
	Shown bool
}

// Snapshot is a thread-safe last-write-wins projection of every sink
// call. It backs both headless tests and the terminal renderer; reads
// may come from a different goroutine than the engine's writes because
// hide timers fire off-thread.
type Snapshot struct {
	mu       sync.RWMutex
	pressed  map[types.ControlID]bool
	visible  map[types.ControlID]bool
	badges   map[types.ControlID]Badge
	phases   map[types.ItemID]types.ItemPhase
	count    int
	empty    bool
	filtered bool
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		pressed: make(map[types.ControlID]bool),
		visible: make(map[types.ControlID]bool),
		badges:  make(map[types.ControlID]Badge),
		phases:  make(map[types.ItemID]types.ItemPhase),
	}
}

func (s *Snapshot) SetControlPressed(id types.ControlID, pressed bool) {
	s.mu.Lock()
	s.pressed[id] = pressed
	s.mu.Unlock()
}

func (s *Snapshot) SetControlVisible(id types.ControlID, visible bool) {
	s.mu.Lock()
	s.visible[id] = visible
	s.mu.Unlock()
}

func (s *Snapshot) SetBadge(id types.ControlID, count int, shown bool) {
	s.mu.Lock()
	s.badges[id] = Badge{Count: count, Shown: shown}
	s.mu.Unlock()
}

func (s *Snapshot) SetItemPhase(id types.ItemID, phase types.ItemPhase) {
	s.mu.Lock()
	s.phases[id] = phase
	s.mu.Unlock()
}

func (s *Snapshot) SetVisibleCount(count int) {
	s.mu.Lock()
	s.count = count
	s.mu.Unlock()
}

func (s *Snapshot) SetEmptyState(active bool) {
	s.mu.Lock()
	s.empty = active
	s.mu.Unlock()
}

func (s *Snapshot) SetFiltering(active bool) {
	s.mu.Lock()
	s.filtered = active
	s.mu.Unlock()
}

func (s *Snapshot) Pressed(id types.ControlID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pressed[id]
}

// ControlVisible reports a control's visibility; controls never painted
// default to visible.
func (s *Snapshot) ControlVisible(id types.ControlID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.visible[id]
	return v || !ok
}

func (s *Snapshot) BadgeFor(id types.ControlID) Badge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.badges[id]
}

func (s *Snapshot) Phase(id types.ItemID) types.ItemPhase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phases[id]
}

func (s *Snapshot) VisibleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

func (s *Snapshot) EmptyState() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.empty
}

func (s *Snapshot) Filtering() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered
}
