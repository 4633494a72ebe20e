package engine

import (
	"facetgrid/pkg/facet"
	"facetgrid/pkg/types"
)

// applyFilters partitions the collection with the visibility predicate
// and materializes the result: item phases, visible count, empty state
// and the filtering flag. Callers must hold e.mu.
func (e *Engine) applyFilters(q facet.Query) {
	visible := 0
	for _, it := range e.items {
		if q.Matches(it) {
			e.show(it.ID)
			visible++
		} else {
			e.hide(it.ID)
		}
	}

	e.visibleCount = visible
	e.filtering = q.Active()

	if e.hasCount {
		e.sink.SetVisibleCount(visible)
	}
	if e.hasEmpty {
		e.sink.SetEmptyState(visible == 0)
	}
	if e.hasGrid {
		e.sink.SetControlVisible(e.gridID, visible > 0)
	}
	e.sink.SetFiltering(e.filtering)
	visibleItems.Set(float64(visible))
}

func (e *Engine) show(id types.ItemID) {
	e.cancelPending(id)
	if phase, painted := e.phases[id]; painted && phase == types.ItemShown {
		return
	}
	e.phases[id] = types.ItemShown
	e.sink.SetItemPhase(id, types.ItemShown)
}

// hide marks the item hiding and schedules its removal from layout
// after the animation delay. An item already hiding or hidden keeps its
// existing transition; at most one task is pending per item.
func (e *Engine) hide(id types.ItemID) {
	if phase, painted := e.phases[id]; painted && phase != types.ItemShown {
		return
	}
	e.cancelPending(id)
	e.phases[id] = types.ItemHiding
	e.sink.SetItemPhase(id, types.ItemHiding)

	gen := e.gen[id]
	e.pending[id] = e.sched.Schedule(e.opts.AnimationDuration, func() {
		e.completeHide(id, gen)
	})
}

// completeHide runs when the hide delay elapses. The generation check
// drops stale tasks whose Stop raced the timer firing.
func (e *Engine) completeHide(id types.ItemID, gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gen[id] != gen {
		return
	}
	delete(e.pending, id)
	if e.phases[id] != types.ItemHiding {
		return
	}
	e.phases[id] = types.ItemHidden
	e.sink.SetItemPhase(id, types.ItemHidden)
}

// cancelPending invalidates the item's outstanding scheduled task, if
// any, by cancelling it and bumping the item's generation.
func (e *Engine) cancelPending(id types.ItemID) {
	e.gen[id]++
	if tok, ok := e.pending[id]; ok {
		e.sched.Cancel(tok)
		delete(e.pending, id)
	}
}
