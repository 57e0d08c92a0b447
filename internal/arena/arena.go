package arena

import (
	"iter"
	"strconv"
)

// Handle identifies a node within one Arena.
type Handle uint32

// Nil is the absent handle (no parent, no child, no sibling).
const Nil = ^Handle(0)

// IsNil reports whether h is the absent handle.
func (h Handle) IsNil() bool {
	return h == Nil
}

// String implements fmt.Stringer.
func (h Handle) String() string {
	if h == Nil {
		return "nil"
	}
	return "#" + strconv.FormatUint(uint64(h), 10)
}

type node[T any] struct {
	payload     T
	parent      Handle
	firstChild  Handle
	lastChild   Handle
	nextSibling Handle
	prevSibling Handle
	childCount  uint32
}

// Arena owns every node of a tree.
type Arena[T any] struct {
	nodes []node[T]
}

// New returns an empty arena with room for capacity nodes.
func New[T any](capacity int) *Arena[T] {
	return &Arena[T]{nodes: make([]node[T], 0, capacity)}
}

// Len returns the number of nodes.
func (a *Arena[T]) Len() int {
	return len(a.nodes)
}

// Valid reports whether h was issued by this arena.
func (a *Arena[T]) Valid(h Handle) bool {
	return h != Nil && int(h) < len(a.nodes)
}

func (a *Arena[T]) at(h Handle) *node[T] {
	if !a.Valid(h) {
		panic("arena: invalid handle " + h.String() + " (len " + strconv.Itoa(len(a.nodes)) + ")")
	}
	return &a.nodes[h]
}

// Insert appends a node carrying payload. When parent is not Nil the node
// becomes the parent's last child.
func (a *Arena[T]) Insert(payload T, parent Handle) Handle {
	if parent != Nil && !a.Valid(parent) {
		panic("arena: invalid parent handle " + parent.String())
	}
	if len(a.nodes) >= int(Nil) {
		panic("arena: handle space exhausted")
	}

	h := Handle(len(a.nodes))
	a.nodes = append(a.nodes, node[T]{
		payload:     payload,
		parent:      parent,
		firstChild:  Nil,
		lastChild:   Nil,
		nextSibling: Nil,
		prevSibling: Nil,
	})

	if parent != Nil {
		p := &a.nodes[parent]
		if p.lastChild == Nil {
			p.firstChild = h
		} else {
			a.nodes[p.lastChild].nextSibling = h
			a.nodes[h].prevSibling = p.lastChild
		}
		p.lastChild = h
		p.childCount++
	}
	return h
}

// Get returns a pointer to the payload of h. The pointer is invalidated by
// the next Insert.
func (a *Arena[T]) Get(h Handle) *T {
	return &a.at(h).payload
}

// Parent returns the parent of h; ok is false for a root.
func (a *Arena[T]) Parent(h Handle) (Handle, bool) {
	p := a.at(h).parent
	return p, p != Nil
}

// FirstChild returns the first child of h or Nil.
func (a *Arena[T]) FirstChild(h Handle) Handle { return a.at(h).firstChild }

// LastChild returns the last child of h or Nil.
func (a *Arena[T]) LastChild(h Handle) Handle { return a.at(h).lastChild }

// NextSibling returns the sibling right of h or Nil.
func (a *Arena[T]) NextSibling(h Handle) Handle { return a.at(h).nextSibling }

// PrevSibling returns the sibling left of h or Nil.
func (a *Arena[T]) PrevSibling(h Handle) Handle { return a.at(h).prevSibling }

// ChildCount returns the number of children of h.
func (a *Arena[T]) ChildCount(h Handle) int { return int(a.at(h).childCount) }

// IsLeaf reports whether h has no children.
func (a *Arena[T]) IsLeaf(h Handle) bool { return a.at(h).firstChild == Nil }

// Children yields the children of h left to right.
func (a *Arena[T]) Children(h Handle) iter.Seq[Handle] {
	first := a.at(h).firstChild
	return func(yield func(Handle) bool) {
		for c := first; c != Nil; c = a.nodes[c].nextSibling {
			if !yield(c) {
				return
			}
		}
	}
}

// ChildrenReverse yields the children of h right to left.
func (a *Arena[T]) ChildrenReverse(h Handle) iter.Seq[Handle] {
	last := a.at(h).lastChild
	return func(yield func(Handle) bool) {
		for c := last; c != Nil; c = a.nodes[c].prevSibling {
			if !yield(c) {
				return
			}
		}
	}
}

// Descendants yields every node below h in preorder (parent before
// children, siblings left to right). h itself is not yielded.
func (a *Arena[T]) Descendants(h Handle) iter.Seq[Handle] {
	a.at(h)
	return func(yield func(Handle) bool) {
		cur := a.nodes[h].firstChild
		for cur != Nil {
			if !yield(cur) {
				return
			}
			cur = a.following(cur, h)
		}
	}
}

// following returns the preorder successor of cur inside the subtree of
// top, or Nil once the subtree is exhausted. A broken parent link ends the
// walk.
func (a *Arena[T]) following(cur, top Handle) Handle {
	if n := &a.nodes[cur]; n.firstChild != Nil {
		return n.firstChild
	}
	for cur != top {
		n := &a.nodes[cur]
		if n.nextSibling != Nil {
			return n.nextSibling
		}
		if n.parent == Nil {
			return Nil
		}
		cur = n.parent
	}
	return Nil
}

// Ancestors yields the ancestors of h, nearest first and root last. h itself
// is not yielded.
func (a *Arena[T]) Ancestors(h Handle) iter.Seq[Handle] {
	first := a.at(h).parent
	return func(yield func(Handle) bool) {
		for p := first; p != Nil; p = a.nodes[p].parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Depth returns the number of ancestors of h.
func (a *Arena[T]) Depth(h Handle) int {
	d := 0
	for p := a.at(h).parent; p != Nil; p = a.nodes[p].parent {
		d++
	}
	return d
}

// Stats summarizes the shape of the arena.
type Stats struct {
	Nodes  int
	Roots  int
	Leaves int
}

// Stats walks the flat node slice once.
func (a *Arena[T]) Stats() Stats {
	s := Stats{Nodes: len(a.nodes)}
	for i := range a.nodes {
		n := &a.nodes[i]
		if n.parent == Nil {
			s.Roots++
		}
		if n.firstChild == Nil {
			s.Leaves++
		}
	}
	return s
}
