package facet

import (
	"sort"
	"strings"

	"facetgrid/pkg/types"
)

// Tally aggregates category availability and counts for a query. It is
// always computed under the group-only filter: narrowing by category
// must never remove other categories from the control row, narrowing by
// group must.
type Tally struct {
	// Total is the number of items passing the group-only filter; it is
	// also the sentinel's badge count.
	Total int

	counts map[string]int    // lowercased label -> item count
	labels map[string]string // lowercased label -> first-seen display label
}

// Collect runs one pass over the items with the query's category facet
// relaxed. Items without category metadata count toward Total only.
func Collect(q Query, items []types.Item) *Tally {
	grouped := q.GroupOnly()
	t := &Tally{
		counts: make(map[string]int),
		labels: make(map[string]string),
	}
	for _, it := range items {
		if !grouped.Matches(it) {
			continue
		}
		t.Total++
		for _, label := range it.Categories {
			key := strings.ToLower(label)
			if _, ok := t.labels[key]; !ok {
				t.labels[key] = label
			}
			t.counts[key]++
		}
	}
	return t
}

// Has reports whether the label appears on at least one item under the
// group-only filter. The lookup is case-insensitive.
func (t *Tally) Has(label string) bool {
	_, ok := t.counts[strings.ToLower(label)]
	return ok
}

// Count returns the number of group-filtered items carrying the label,
// or zero when the label is unavailable.
func (t *Tally) Count(label string) int {
	return t.counts[strings.ToLower(label)]
}

// Labels returns the available category labels in their first-seen
// display casing, sorted for stable iteration.
func (t *Tally) Labels() []string {
	out := make([]string, 0, len(t.labels))
	for _, label := range t.labels {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// Available returns the availability set keyed by display label.
func Available(q Query, items []types.Item) map[string]struct{} {
	t := Collect(q, items)
	set := make(map[string]struct{}, len(t.labels))
	for _, label := range t.labels {
		set[label] = struct{}{}
	}
	return set
}

// Counts returns the per-category counts keyed by display label, with
// the sentinel entry holding the group-only total.
func Counts(q Query, items []types.Item) map[string]int {
	t := Collect(q, items)
	out := make(map[string]int, len(t.labels)+1)
	for key, label := range t.labels {
		out[label] = t.counts[key]
	}
	out[q.Sentinel] = t.Total
	return out
}
