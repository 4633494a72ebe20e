package types

// ItemPhase is the visibility state of an item's external representation.
// Hiding is the window between "marked hidden" and "removed from layout";
// it lasts for the configured animation duration unless cancelled.
type ItemPhase uint8

const (
	ItemShown ItemPhase = iota
	ItemHiding
	ItemHidden
)

func (p ItemPhase) String() string {
	switch p {
	case ItemShown:
		return "shown"
	case ItemHiding:
		return "hiding"
	case ItemHidden:
		return "hidden"
	}
	return "unknown"
}

// ViewSink receives every visual/ARIA state change the engine derives.
// Implementations may be a real UI layer, a terminal renderer or a test
// double; the engine depends on nothing else for output.
//
// All values pushed through the sink are re-derived in full after every
// transition, never incrementally, so a sink may safely treat each call
// as last-write-wins.
type ViewSink interface {
	SetControlPressed(id ControlID, pressed bool)
	SetControlVisible(id ControlID, visible bool)
	// SetBadge updates a control's count badge. shown=false hides the
	// badge without removing it.
	SetBadge(id ControlID, count int, shown bool)
	SetItemPhase(id ItemID, phase ItemPhase)
	SetVisibleCount(count int)
	SetEmptyState(active bool)
	SetFiltering(active bool)
}
