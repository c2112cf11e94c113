package analyzer

import "github.com/dhamidi/cq/css/parser"

type edit struct {
	replacement *parser.Node
}

// Mutation is a batch of edits against one tree. Commit copies only the
// nodes on the path from the root to each edited node; every other subtree
// is shared with the original.
type Mutation struct {
	root  *parser.Node
	edits map[*parser.Node]edit
}

func NewMutation(root *parser.Node) *Mutation {
	return &Mutation{
		root:  root,
		edits: make(map[*parser.Node]edit),
	}
}

// RemoveNode drops n, including the trivia in front of it.
func (m *Mutation) RemoveNode(n *parser.Node) {
	m.edits[n] = edit{}
}

func (m *Mutation) ReplaceNode(old, replacement *parser.Node) {
	m.edits[old] = edit{replacement: replacement}
}

// Merge adds the edits of other. Both must target the same tree.
func (m *Mutation) Merge(other *Mutation) {
	for n, e := range other.edits {
		m.edits[n] = e
	}
}

func (m *Mutation) Len() int {
	return len(m.edits)
}

// Span returns the smallest span covering every edited node in the
// original tree. It reports false for an empty mutation.
func (m *Mutation) Span() (parser.Span, bool) {
	var out parser.Span
	first := true
	for n := range m.edits {
		if first {
			out = n.Span
			first = false
			continue
		}
		if n.Span.Start.Offset < out.Start.Offset {
			out.Start = n.Span.Start
		}
		if n.Span.End.Offset > out.End.Offset {
			out.End = n.Span.End
		}
	}
	return out, !first
}

// Overlaps reports whether a node edited by m intersects, contains or lies
// within a node edited by other. Merging overlapping mutations loses the
// inner edit.
func (m *Mutation) Overlaps(other *Mutation) bool {
	for a := range m.edits {
		for b := range other.edits {
			if a == b || spansOverlap(a.Span, b.Span) {
				return true
			}
		}
	}
	return false
}

func spansOverlap(a, b parser.Span) bool {
	if a.Start.Offset < b.End.Offset && b.Start.Offset < a.End.Offset {
		return true
	}
	return contains(a, b) || contains(b, a)
}

func contains(outer, inner parser.Span) bool {
	return outer.Start.Offset <= inner.Start.Offset && inner.End.Offset <= outer.End.Offset
}

// Commit returns the edited tree. Removing the root yields nil. Spans of
// copied nodes still refer to the original source.
func (m *Mutation) Commit() *parser.Node {
	if len(m.edits) == 0 {
		return m.root
	}
	out, _ := m.rebuild(m.root)
	return out
}

func (m *Mutation) rebuild(n *parser.Node) (*parser.Node, bool) {
	if e, ok := m.edits[n]; ok {
		return e.replacement, true
	}

	var children []*parser.Node
	changed := false
	for i, child := range n.Children {
		next, ok := m.rebuild(child)
		if ok && !changed {
			changed = true
			children = make([]*parser.Node, 0, len(n.Children))
			children = append(children, n.Children[:i]...)
		}
		if changed && next != nil {
			children = append(children, next)
		}
	}
	if !changed {
		return n, false
	}

	clone := *n
	clone.Children = children
	return &clone, true
}
