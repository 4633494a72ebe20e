package types

import (
	"net/url"

	"github.com/gorilla/schema"
)

// Selection is the authoritative filter state: at most one group, and one
// category label where the configured sentinel stands for "all categories".
// Everything painted by the engine is derived from a Selection plus the
// static item collection.
type Selection struct {
	Group    Group  `json:"group" schema:"group"`
	Category string `json:"category" schema:"category"`
}

// SelectionPatch is a partial Selection; nil fields are left untouched on
// merge. Used both for updateState-style merges and for decoding a
// deep-link query string.
type SelectionPatch struct {
	Group    *Group  `json:"group,omitempty" schema:"group"`
	Category *string `json:"category,omitempty" schema:"category"`
}

func (s Selection) Apply(p SelectionPatch) Selection {
	if p.Group != nil {
		s.Group = *p.Group
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	return s
}

var selectionDecoder = schema.NewDecoder()

func init() {
	selectionDecoder.IgnoreUnknownKeys(true)
}

// SelectionFromQuery decodes a selection patch from query values, e.g.
// "group=pro&category=Fitness". Unknown keys are ignored.
func SelectionFromQuery(values url.Values) (SelectionPatch, error) {
	var p SelectionPatch
	err := selectionDecoder.Decode(&p, values)
	return p, err
}

// SelectionFromRawQuery parses and decodes a raw query string.
func SelectionFromRawQuery(raw string) (SelectionPatch, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return SelectionPatch{}, err
	}
	return SelectionFromQuery(values)
}
