package types

import "testing"

func sampleTree() *Node {
	return &Node{
		Attrs: map[string]string{"id": "root"},
		Children: []*Node{
			{Attrs: map[string]string{"id": "a", "data-filter-group": "pro"}},
			{
				Attrs: map[string]string{"id": "b"},
				Children: []*Node{
					{Attrs: map[string]string{"id": "c", "data-filter-group": "kontra"}},
				},
			},
		},
	}
}

func TestParseSelector(t *testing.T) {
	sel := ParseSelector("data-filter-group=pro")
	if sel.Attr != "data-filter-group" || sel.Value != "pro" {
		t.Errorf("parsed %+v", sel)
	}
	if !ParseSelector("data-filter-group").Matches(&Node{Attrs: map[string]string{"data-filter-group": "x"}}) {
		t.Error("presence selector should match any value")
	}
	if ParseSelector("").Matches(&Node{Attrs: map[string]string{"id": "x"}}) {
		t.Error("zero selector must match nothing")
	}
}

func TestNodeFind(t *testing.T) {
	root := sampleTree()

	if n := root.Find(ParseSelector("data-filter-group=kontra")); n == nil {
		t.Fatal("nested node not found")
	} else if id, _ := n.Attr("id"); id != "c" {
		t.Errorf("found %q, want c", id)
	}

	all := root.FindAll(ParseSelector("data-filter-group"))
	if len(all) != 2 {
		t.Fatalf("FindAll returned %d nodes, want 2", len(all))
	}

	if root.Find(ParseSelector("data-missing")) != nil {
		t.Error("expected nil for unmatched selector")
	}

	var nilNode *Node
	if nilNode.Find(ParseSelector("id")) != nil || nilNode.FindAll(ParseSelector("id")) != nil {
		t.Error("nil node must be safe to query")
	}
}
