package dag

import (
	"strings"
	"testing"
)

// node is a minimal labeled tree for traversal tests.
type node struct {
	label    string
	children []*node
}

func (n *node) Children() (*node, *node, int) {
	switch len(n.children) {
	case 0:
		return nil, nil, 0
	case 1:
		return n.children[0], nil, 1
	default:
		return n.children[0], n.children[1], 2
	}
}

func leaf(label string) *node           { return &node{label: label} }
func unary(label string, c *node) *node { return &node{label: label, children: []*node{c}} }

func binary(label string, l, r *node) *node {
	return &node{label: label, children: []*node{l, r}}
}

func TestPreOrder(t *testing.T) {
	root := binary("a", unary("b", leaf("c")), binary("d", leaf("e"), leaf("f")))

	var got []string
	for n := range PreOrder(root) {
		got = append(got, n.label)
	}
	if want := "a b c d e f"; strings.Join(got, " ") != want {
		t.Errorf("pre-order: got %v, want %s", got, want)
	}
}

func TestPostOrder(t *testing.T) {
	root := binary("a", unary("b", leaf("c")), binary("d", leaf("e"), leaf("f")))

	var got []string
	for n := range PostOrder(root) {
		got = append(got, n.label)
	}
	if want := "c b e f d a"; strings.Join(got, " ") != want {
		t.Errorf("post-order: got %v, want %s", got, want)
	}
}

func TestPostOrderDeep(t *testing.T) {
	// A chain deep enough to smash the call stack if traversal recursed.
	root := leaf("bottom")
	for range 200000 {
		root = unary("link", root)
	}

	count := 0
	first := ""
	for n := range PostOrder(root) {
		if count == 0 {
			first = n.label
		}
		count++
	}
	if first != "bottom" {
		t.Errorf("first visited: got %q, want %q", first, "bottom")
	}
	if count != 200001 {
		t.Errorf("visit count: got %d, want %d", count, 200001)
	}
}

func TestVerbosePreOrder(t *testing.T) {
	root := binary("a", leaf("b"), unary("c", leaf("d")))

	var got []string
	for v := range VerbosePreOrder(root) {
		got = append(got, v.Node.label, string(rune('0'+v.ChildrenYielded)))
	}
	want := []string{"a", "0", "b", "0", "a", "1", "c", "0", "d", "0", "c", "1", "a", "2"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("verbose pre-order: got %v, want %v", got, want)
	}
}
