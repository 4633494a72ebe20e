package engine

import (
	"facetgrid/pkg/facet"
	"facetgrid/pkg/types"
)

func (e *Engine) paintGroupControls(sel types.Selection) {
	for _, c := range e.groupControls {
		e.sink.SetControlPressed(c.ID, c.Group == sel.Group && sel.Group != "")
	}
}

// A category control stays visible while it is the sentinel or its
// label still has content under the group-only filter.
func (e *Engine) paintCategoryVisibility(tally *facet.Tally) {
	for _, c := range e.categoryControls {
		visible := c.Category == e.opts.DefaultCategory || tally.Has(c.Category)
		e.sink.SetControlVisible(c.ID, visible)
	}
}

// A zero-count badge is hidden, not removed.
func (e *Engine) paintCategoryCounts(q facet.Query, tally *facet.Tally) {
	for _, c := range e.categoryControls {
		count := tally.Count(c.Category)
		if c.Category == q.Sentinel {
			count = tally.Total
		}
		e.sink.SetBadge(c.ID, count, count > 0)
	}
}

func (e *Engine) paintCategoryPressed(sel types.Selection) {
	for _, c := range e.categoryControls {
		e.sink.SetControlPressed(c.ID, c.Category == sel.Category)
	}
}
