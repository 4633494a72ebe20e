package engine

import (
	"sync"

	"facetgrid/pkg/types"
)

// State is the selection container. It carries no derivation logic; the
// derived values (visible count, filtering flag) live on the Engine and
// are recomputed on every transition, never stored authoritatively.
type State struct {
	mu  sync.RWMutex
	cur types.Selection
}

func NewState(initial types.Selection) *State {
	return &State{cur: initial}
}

func (s *State) Get() types.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Patch merges the non-nil fields into the selection and returns the
// result. No validation happens here; callers supply meaningful values.
func (s *State) Patch(p types.SelectionPatch) types.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = s.cur.Apply(p)
	return s.cur
}

// Set replaces the selection wholesale.
func (s *State) Set(sel types.Selection) {
	s.mu.Lock()
	s.cur = sel
	s.mu.Unlock()
}
