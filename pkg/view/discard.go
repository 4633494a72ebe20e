package view

import "facetgrid/pkg/types"

// Discard drops every sink call. Useful when only the engine's derived
// state is of interest.
type Discard struct{}

func (Discard) SetControlPressed(types.ControlID, bool)    {}
func (Discard) SetControlVisible(types.ControlID, bool)    {}
func (Discard) SetBadge(types.ControlID, int, bool)        {}
func (Discard) SetItemPhase(types.ItemID, types.ItemPhase) {}
func (Discard) SetVisibleCount(int)                        {}
func (Discard) SetEmptyState(bool)                         {}
func (Discard) SetFiltering(bool)                          {}
