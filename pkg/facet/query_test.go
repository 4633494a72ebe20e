package facet

import (
	"math/rand"
	"testing"

	"facetgrid/pkg/types"
)

const sentinel = "alle"

func makeItem(id string, group types.Group, categories ...string) types.Item {
	return types.Item{ID: types.ItemID(id), Group: group, Categories: categories}
}

func TestQueryMatches_PredicateTable(t *testing.T) {
	item := makeItem("a", "pro", "Ernährung", "Fitness")
	bare := makeItem("b", "kontra")

	tests := []struct {
		name  string
		query Query
		item  types.Item
		want  bool
	}{
		{"no filters", Query{Category: sentinel, Sentinel: sentinel}, item, true},
		{"no filters, empty category state", Query{Sentinel: sentinel}, item, true},
		{"group only, match", Query{Group: "pro", Category: sentinel, Sentinel: sentinel}, item, true},
		{"group only, no match", Query{Group: "kontra", Category: sentinel, Sentinel: sentinel}, item, false},
		{"category only, match", Query{Category: "Fitness", Sentinel: sentinel}, item, true},
		{"category only, no match", Query{Category: "Motivation", Sentinel: sentinel}, item, false},
		{"both, both match", Query{Group: "pro", Category: "Ernährung", Sentinel: sentinel}, item, true},
		{"both, category mismatch", Query{Group: "pro", Category: "Motivation", Sentinel: sentinel}, item, false},
		{"both, group mismatch", Query{Group: "kontra", Category: "Ernährung", Sentinel: sentinel}, item, false},
		{"group with sentinel category relaxes", Query{Group: "kontra", Category: sentinel, Sentinel: sentinel}, bare, true},
		{"item without categories fails category filter", Query{Category: "Fitness", Sentinel: sentinel}, bare, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Matches(tt.item); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryMatches_CategoryCaseInsensitive(t *testing.T) {
	item := makeItem("a", "pro", "Ernährung")
	q := Query{Category: "ernährung", Sentinel: sentinel}
	if !q.Matches(item) {
		t.Error("expected case-insensitive category match")
	}
}

func TestQueryGroupOnly(t *testing.T) {
	q := Query{Group: "pro", Category: "Fitness", Sentinel: sentinel}
	g := q.GroupOnly()
	if g.CategoryActive() {
		t.Error("GroupOnly() must relax the category facet")
	}
	if g.Group != "pro" {
		t.Errorf("GroupOnly() changed group to %q", g.Group)
	}
}

// Randomized consistency check: Matches must always equal the
// conjunction of the two independent facet tests.
func TestQueryMatches_Conjunction(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	groups := []types.Group{"", "pro", "kontra", "tipps"}
	categories := []string{"Ernährung", "Fitness", "Motivation", "Regeneration"}

	randomItem := func() types.Item {
		cats := make([]string, rng.Intn(3))
		for j := range cats {
			cats[j] = categories[rng.Intn(len(categories))]
		}
		return makeItem("x", groups[rng.Intn(len(groups))], cats...)
	}

	for i := 0; i < 500; i++ {
		it := randomItem()
		sel := []string{sentinel, "Ernährung", "Fitness", "Motivation"}[rng.Intn(4)]
		q := Query{Group: groups[rng.Intn(len(groups))], Category: sel, Sentinel: sentinel}

		groupOK := !q.GroupActive() || it.Group == q.Group
		catOK := !q.CategoryActive() || hasCategory(it.Categories, q.Category)
		if got := q.Matches(it); got != (groupOK && catOK) {
			t.Fatalf("Matches(%+v) under %+v = %v, want %v", it, q, got, groupOK && catOK)
		}
	}
}
