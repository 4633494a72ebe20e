package engine

import (
	"log"
	"strconv"

	"facetgrid/pkg/facet"
	"facetgrid/pkg/types"
)

const (
	attrGroup    = "data-group"
	attrCategory = "data-category"
	attrID       = "id"
	attrTitle    = "title"
)

// Bind wires the engine to a document: resolves control handles,
// normalizes per-item facet metadata, sets the initial selection and
// runs one full apply pass. Binding again re-wires from scratch, which
// is safe but redundant.
func (e *Engine) Bind(doc *types.Node) {
	e.BindWithSelection(doc, types.SelectionPatch{})
}

// BindWithSelection is Bind with an initial selection patch applied on
// top of the default state, e.g. one decoded from a deep-link query
// string. The patch is not validated against the collection.
func (e *Engine) BindWithSelection(doc *types.Node, patch types.SelectionPatch) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.unwire()
	e.wire(doc)
	e.state.Set(types.Selection{Category: e.opts.DefaultCategory}.Apply(patch))
	e.applyAll()
}

func (e *Engine) unwire() {
	for id, tok := range e.pending {
		e.sched.Cancel(tok)
		delete(e.pending, id)
	}
	e.items = nil
	e.groupControls = nil
	e.categoryControls = nil
	e.resetControls = nil
	e.hasGrid = false
	e.hasCount = false
	e.hasEmpty = false
	e.phases = make(map[types.ItemID]types.ItemPhase)
	e.gen = make(map[types.ItemID]uint64)
}

func (e *Engine) wire(doc *types.Node) {
	if doc == nil {
		return
	}
	sels := e.opts.Selectors

	grid := doc.Find(types.ParseSelector(sels.Grid))
	if grid == nil {
		log.Printf("filter grid not found (selector %q), item filtering disabled", sels.Grid)
	} else {
		e.gridID = controlID(grid, "grid", 0)
		e.hasGrid = true
		e.items = collectItems(grid, types.ParseSelector(sels.Item))
	}

	for i, n := range doc.FindAll(types.ParseSelector(sels.GroupControl)) {
		value, _ := n.Attr(selectorAttr(sels.GroupControl))
		e.groupControls = append(e.groupControls, Control{
			ID:    controlID(n, "group", i),
			Group: types.Group(value),
			Label: controlLabel(n, value),
		})
	}
	for i, n := range doc.FindAll(types.ParseSelector(sels.CategoryControl)) {
		value, _ := n.Attr(selectorAttr(sels.CategoryControl))
		e.categoryControls = append(e.categoryControls, Control{
			ID:       controlID(n, "category", i),
			Category: value,
			Label:    controlLabel(n, value),
		})
	}
	for i, n := range doc.FindAll(types.ParseSelector(sels.Reset)) {
		e.resetControls = append(e.resetControls, controlID(n, "reset", i))
	}
	for i, n := range doc.FindAll(types.ParseSelector(sels.Clear)) {
		e.resetControls = append(e.resetControls, controlID(n, "clear", i))
	}

	e.hasCount = doc.Find(types.ParseSelector(sels.Count)) != nil
	e.hasEmpty = doc.Find(types.ParseSelector(sels.NoResults)) != nil
}

// collectItems gathers item nodes (grid children when no item selector
// is configured) and normalizes their facet metadata. Facet attributes
// declared on a descendant are lifted to the item, so later stages only
// ever read the normalized form.
func collectItems(grid *types.Node, itemSel types.Selector) []types.Item {
	var nodes []*types.Node
	if itemSel.IsZero() {
		nodes = grid.Children
	} else {
		nodes = grid.FindAll(itemSel)
	}
	items := make([]types.Item, 0, len(nodes))
	for i, n := range nodes {
		items = append(items, normalizeItem(n, i))
	}
	return items
}

func normalizeItem(n *types.Node, index int) types.Item {
	it := types.Item{ID: itemID(n, index)}
	if title, ok := n.Attr(attrTitle); ok {
		it.Title = title
	} else {
		it.Title = n.Text
	}
	if group, ok := findAttr(n, attrGroup); ok {
		it.Group = types.Group(group)
	}
	if raw, ok := findAttr(n, attrCategory); ok {
		it.Categories = facet.ParseCategories(raw)
	}
	return it
}

// findAttr looks the attribute up on the node itself first, then on its
// descendants in depth-first order.
func findAttr(n *types.Node, name string) (string, bool) {
	if v, ok := n.Attr(name); ok {
		return v, true
	}
	for _, c := range n.Children {
		if v, ok := findAttr(c, name); ok {
			return v, true
		}
	}
	return "", false
}

func itemID(n *types.Node, index int) types.ItemID {
	if id, ok := n.Attr(attrID); ok && id != "" {
		return types.ItemID(id)
	}
	return types.ItemID("item-" + strconv.Itoa(index))
}

func controlID(n *types.Node, kind string, index int) types.ControlID {
	if id, ok := n.Attr(attrID); ok && id != "" {
		return types.ControlID(id)
	}
	return types.ControlID(kind + "-" + strconv.Itoa(index))
}

func controlLabel(n *types.Node, fallback string) string {
	if n.Text != "" {
		return n.Text
	}
	return fallback
}

func selectorAttr(s string) string {
	return types.ParseSelector(s).Attr
}
