package engine

import (
	"sync"

	"facetgrid/pkg/facet"
	"facetgrid/pkg/sched"
	"facetgrid/pkg/types"
	"facetgrid/pkg/view"
)

// Control is a resolved facet control handle. Group controls carry a
// group, category controls a category label; reset controls carry
// neither.
type Control struct {
	ID       types.ControlID
	Group    types.Group
	Category string
	Label    string
}

// Engine owns one mounted filter instance: the selection state, the
// normalized item collection, the resolved control handles and the
// output sink. All repainting is a pure function of the selection plus
// the static collection.
//
// Transitions run to completion under the engine mutex before the next
// one is processed; the only off-thread activity is the hide-completion
// task, which re-acquires the mutex.
type Engine struct {
	mu    sync.Mutex
	opts  types.Options
	sink  types.ViewSink
	sched types.Scheduler

	state *State
	items []types.Item

	groupControls    []Control
	categoryControls []Control
	resetControls    []types.ControlID

	gridID   types.ControlID
	hasGrid  bool
	hasCount bool
	hasEmpty bool

	phases  map[types.ItemID]types.ItemPhase
	pending map[types.ItemID]types.ScheduleToken
	gen     map[types.ItemID]uint64

	visibleCount int
	filtering    bool
}

// New creates an unbound engine. A nil sink discards output and a nil
// scheduler falls back to real timers.
func New(opts types.Options, sink types.ViewSink, scheduler types.Scheduler) *Engine {
	if opts.DefaultCategory == "" {
		opts.DefaultCategory = types.DefaultCategoryAll
	}
	if sink == nil {
		sink = view.Discard{}
	}
	if scheduler == nil {
		scheduler = sched.NewTimers()
	}
	return &Engine{
		opts:    opts,
		sink:    sink,
		sched:   scheduler,
		state:   NewState(types.Selection{Category: opts.DefaultCategory}),
		phases:  make(map[types.ItemID]types.ItemPhase),
		pending: make(map[types.ItemID]types.ScheduleToken),
		gen:     make(map[types.ItemID]uint64),
	}
}

func (e *Engine) Options() types.Options {
	return e.opts
}

func (e *Engine) Selection() types.Selection {
	return e.state.Get()
}

func (e *Engine) VisibleCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visibleCount
}

// Filtering reports whether any non-default facet is active.
func (e *Engine) Filtering() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filtering
}

// CategoryCounts returns the per-category counts under the group-only
// filter, with the sentinel entry holding the group total.
func (e *Engine) CategoryCounts() map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return facet.Counts(facet.NewQuery(e.state.Get(), e.opts.DefaultCategory), e.items)
}

// AvailableCategories returns the set of category labels with content
// under the current group filter.
func (e *Engine) AvailableCategories() map[string]struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	return facet.Available(facet.NewQuery(e.state.Get(), e.opts.DefaultCategory), e.items)
}

func (e *Engine) Items() []types.Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]types.Item, len(e.items))
	copy(out, e.items)
	return out
}

func (e *Engine) GroupControls() []Control {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Control, len(e.groupControls))
	copy(out, e.groupControls)
	return out
}

func (e *Engine) CategoryControls() []Control {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Control, len(e.categoryControls))
	copy(out, e.categoryControls)
	return out
}
