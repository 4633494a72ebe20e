package engine

import (
	"facetgrid/pkg/facet"
	"facetgrid/pkg/types"
)

// ToggleGroup selects the group, or deselects it when it is already
// selected. The category selection is left untouched even when it no
// longer matches anything under the new group; the combination then
// simply yields zero matches.
func (e *Engine) ToggleGroup(g types.Group) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := g
	if e.state.Get().Group == g {
		next = ""
	}
	e.state.Patch(types.SelectionPatch{Group: &next})
	transitionsTotal.WithLabelValues("group").Inc()
	e.applyAll()
}

// ToggleCategory selects the category; selecting the already-selected
// category resets to the sentinel (re-selecting the sentinel itself is
// a no-op transition that still repaints).
func (e *Engine) ToggleCategory(c string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := c
	if cur := e.state.Get().Category; cur == c && c != e.opts.DefaultCategory {
		next = e.opts.DefaultCategory
	}
	e.state.Patch(types.SelectionPatch{Category: &next})
	transitionsTotal.WithLabelValues("category").Inc()
	e.applyAll()
}

// Reset unconditionally returns to the initial state: no group, sentinel
// category.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Set(types.Selection{Category: e.opts.DefaultCategory})
	transitionsTotal.WithLabelValues("reset").Inc()
	e.applyAll()
}

// Activate dispatches a control activation by handle. Unknown handles
// are ignored.
func (e *Engine) Activate(id types.ControlID) {
	e.mu.Lock()
	var (
		kind     int
		group    types.Group
		category string
	)
	for _, c := range e.groupControls {
		if c.ID == id {
			kind, group = 1, c.Group
		}
	}
	for _, c := range e.categoryControls {
		if c.ID == id {
			kind, category = 2, c.Category
		}
	}
	for _, rid := range e.resetControls {
		if rid == id {
			kind = 3
		}
	}
	e.mu.Unlock()

	switch kind {
	case 1:
		e.ToggleGroup(group)
	case 2:
		e.ToggleCategory(category)
	case 3:
		e.Reset()
	}
}

// applyAll repaints everything derived from the current selection, in a
// fixed order: group controls, then category-control visibility, counts
// and pressed state (all computed from the group-only filter), and the
// item set last. Callers must hold e.mu.
func (e *Engine) applyAll() {
	sel := e.state.Get()
	q := facet.NewQuery(sel, e.opts.DefaultCategory)

	e.paintGroupControls(sel)
	tally := facet.Collect(q, e.items)
	e.paintCategoryVisibility(tally)
	e.paintCategoryCounts(q, tally)
	e.paintCategoryPressed(sel)
	e.applyFilters(q)
}
