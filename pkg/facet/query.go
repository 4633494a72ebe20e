package facet

import (
	"strings"

	"facetgrid/pkg/types"
)

// Query is a selection made self-contained by carrying the sentinel, so
// the derivation functions stay pure over (query, items).
type Query struct {
	Group    types.Group
	Category string
	Sentinel string
}

func NewQuery(sel types.Selection, sentinel string) Query {
	return Query{Group: sel.Group, Category: sel.Category, Sentinel: sentinel}
}

// CategoryActive reports whether the category facet constrains anything,
// i.e. the selected category is not the sentinel.
func (q Query) CategoryActive() bool {
	return q.Category != "" && q.Category != q.Sentinel
}

func (q Query) GroupActive() bool {
	return q.Group != ""
}

func (q Query) Active() bool {
	return q.GroupActive() || q.CategoryActive()
}

// GroupOnly relaxes the category facet to the sentinel. Category
// availability and counts are always computed under this query.
func (q Query) GroupOnly() Query {
	q.Category = q.Sentinel
	return q
}

// Matches decides item visibility for this query:
//
//	no group, no category  -> visible
//	group only             -> group must match
//	category only          -> item must carry the category
//	both                   -> both must match
//
// The sentinel category never constrains. Category comparison is
// case-insensitive; group comparison is exact.
func (q Query) Matches(it types.Item) bool {
	if q.GroupActive() && it.Group != q.Group {
		return false
	}
	if !q.CategoryActive() {
		return true
	}
	return hasCategory(it.Categories, q.Category)
}

func hasCategory(categories []string, want string) bool {
	for _, c := range categories {
		if strings.EqualFold(c, want) {
			return true
		}
	}
	return false
}
