package types

import "time"

// Selectors identify the handles the engine binds to inside the supplied
// node tree. Each is an attribute selector ("attr" or "attr=value"); an
// empty selector leaves the corresponding feature unbound and the engine
// degrades it silently.
type Selectors struct {
	Grid string `json:"grid,omitempty"`
	// Item is an opt-in override; when empty the grid's direct children
	// are the items.
	Item            string `json:"item,omitempty"`
	GroupControl    string `json:"groupControl,omitempty"`
	CategoryControl string `json:"categoryControl,omitempty"`
	Reset           string `json:"reset,omitempty"`
	Clear           string `json:"clear,omitempty"`
	NoResults       string `json:"noResults,omitempty"`
	Count           string `json:"count,omitempty"`
}

// Options is the static engine configuration; constant for the lifetime
// of an engine instance.
type Options struct {
	// DefaultCategory is the sentinel meaning "all categories". It is a
	// selectable control value, not merely the absence of one.
	DefaultCategory string `json:"defaultCategory"`
	// AnimationDuration is the delay before a hidden item is removed
	// from layout.
	AnimationDuration time.Duration `json:"animationDuration"`
	Selectors         Selectors     `json:"selectors"`
}

const DefaultCategoryAll = "alle"

func DefaultOptions() Options {
	return Options{
		DefaultCategory:   DefaultCategoryAll,
		AnimationDuration: 300 * time.Millisecond,
		Selectors: Selectors{
			Grid:            "data-filter-grid",
			GroupControl:    "data-filter-group",
			CategoryControl: "data-filter-category",
			Reset:           "data-filter-reset",
			Clear:           "data-filter-clear",
			NoResults:       "data-filter-empty",
			Count:           "data-filter-count",
		},
	}
}
