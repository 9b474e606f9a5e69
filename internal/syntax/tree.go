package syntax

import "sort"

// DocumentName is the name of the root node.
const DocumentName = "Document"

// Node is a named range of the document. Children are ordered by position
// and lie within their parent.
type Node struct {
	Name     string
	From     int
	To       int
	Children []*Node
}

// Tree is an immutable syntax tree over one document revision. The root's
// children are line nodes, one per document line.
type Tree struct {
	Root   *Node
	Length int
}

// NewTree wraps line nodes under a Document root.
func NewTree(length int, lines []*Node) *Tree {
	return &Tree{
		Root: &Node{
			Name:     DocumentName,
			From:     0,
			To:       length,
			Children: lines,
		},
		Length: length,
	}
}

// Iterate walks, in document order, every node below the root that touches
// [from, to]. Returning false from enter skips the node's children.
func (t *Tree) Iterate(from, to int, enter func(n *Node) bool) {
	if t == nil || t.Root == nil {
		return
	}
	for _, c := range t.Root.Children {
		iterate(c, from, to, enter)
	}
}

func iterate(n *Node, from, to int, enter func(n *Node) bool) {
	if n.To < from || n.From > to {
		return
	}
	if !enter(n) {
		return
	}
	for _, c := range n.Children {
		iterate(c, from, to, enter)
	}
}

// LineNodeAt returns the top-level node covering pos, or nil. A node whose
// end equals pos covers it only if no later node starts there.
func (t *Tree) LineNodeAt(pos int) *Node {
	if t == nil || t.Root == nil {
		return nil
	}
	lines := t.Root.Children
	i := sort.Search(len(lines), func(i int) bool {
		return lines[i].From > pos
	})
	if i == 0 {
		return nil
	}
	n := lines[i-1]
	if pos > n.To {
		return nil
	}
	return n
}
