package types

type Group string

type ItemID string

type ControlID string

// Item is the engine's normalized view of one rendered content unit.
// The engine never creates or mutates the unit itself; it only reads
// these two facet attributes and drives visibility through the ViewSink.
type Item struct {
	ID         ItemID   `json:"id"`
	Title      string   `json:"title,omitempty"`
	Group      Group    `json:"group,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

func (i Item) HasGroup() bool {
	return i.Group != ""
}
