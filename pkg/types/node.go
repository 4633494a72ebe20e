package types

import "strings"

// Node is the DOM-like external representation the rendering collaborator
// hands to the engine: an attribute bag plus nested children. The engine
// reads attributes and resolves control handles from it, nothing more.
type Node struct {
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// Find returns the first node in depth-first order matching the selector,
// including the receiver itself, or nil.
func (n *Node) Find(sel Selector) *Node {
	if n == nil {
		return nil
	}
	if sel.Matches(n) {
		return n
	}
	for _, c := range n.Children {
		if m := c.Find(sel); m != nil {
			return m
		}
	}
	return nil
}

// FindAll returns every matching node in depth-first order.
func (n *Node) FindAll(sel Selector) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	if sel.Matches(n) {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, c.FindAll(sel)...)
	}
	return out
}

// Selector matches nodes by attribute presence ("data-role") or by
// attribute value ("data-role=grid"). The zero selector matches nothing.
type Selector struct {
	Attr  string
	Value string
	exact bool
}

func ParseSelector(s string) Selector {
	if s == "" {
		return Selector{}
	}
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		return Selector{Attr: s[:idx], Value: s[idx+1:], exact: true}
	}
	return Selector{Attr: s}
}

func (s Selector) IsZero() bool {
	return s.Attr == ""
}

func (s Selector) Matches(n *Node) bool {
	if s.Attr == "" {
		return false
	}
	v, ok := n.Attr(s.Attr)
	if !ok {
		return false
	}
	return !s.exact || v == s.Value
}
