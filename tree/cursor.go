package tree

import (
	"iter"
	"sync"

	"github.com/hupe1980/roletree/role"
)

// EventKind distinguishes the two edges of a node in a traversal.
type EventKind uint8

const (
	// Enter is emitted before the children of a node.
	Enter EventKind = iota
	// Leave is emitted after the children of a node.
	Leave
)

func (k EventKind) String() string {
	if k == Enter {
		return "enter"
	}
	return "leave"
}

// Event is one step of a Cursor.
type Event struct {
	Kind EventKind
	Node Handle
}

// Cursor walks the edges of a tree in depth-first order, descending only
// into subtrees whose summary contains a target role. The root is always
// entered.
type Cursor[S comparable, P Summary[S]] struct {
	t      *Tree[S, P]
	target role.Role
	next   Event
	done   bool
}

// Traverse returns a cursor positioned before Enter(root) that prunes
// subtrees not containing r.
func (t *Tree[S, P]) Traverse(r role.Role) *Cursor[S, P] {
	t.mustIndexed()
	mustValidRole(r)
	return &Cursor[S, P]{
		t:      t,
		target: r,
		next:   Event{Kind: Enter, Node: t.root},
	}
}

// Next returns the next event; ok is false once the root has been left.
func (c *Cursor[S, P]) Next() (Event, bool) {
	if c.done {
		return Event{}, false
	}
	ev := c.next
	c.advance(ev)
	return ev, true
}

func (c *Cursor[S, P]) advance(ev Event) {
	t := c.t
	switch ev.Kind {
	case Enter:
		if ch := c.qualifying(t.arena.FirstChild(ev.Node)); ch != Nil {
			c.next = Event{Kind: Enter, Node: ch}
			return
		}
		c.next = Event{Kind: Leave, Node: ev.Node}
	case Leave:
		if ev.Node == t.root {
			c.done = true
			return
		}
		if sib := c.qualifying(t.arena.NextSibling(ev.Node)); sib != Nil {
			c.next = Event{Kind: Enter, Node: sib}
			return
		}
		p, ok := t.arena.Parent(ev.Node)
		if !ok {
			c.done = true
			return
		}
		c.next = Event{Kind: Leave, Node: p}
	}
}

// qualifying returns h or the first sibling right of it whose subtree
// contains the target, or Nil.
func (c *Cursor[S, P]) qualifying(h Handle) Handle {
	for ; h != Nil; h = c.t.arena.NextSibling(h) {
		if c.t.qualifies(h, c.target) {
			return h
		}
	}
	return Nil
}

// Events yields the remaining events of the cursor.
func (c *Cursor[S, P]) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, ok := c.Next()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// DescendantsRole yields, in preorder, the root and every node whose subtree
// contains r.
func (t *Tree[S, P]) DescendantsRole(r role.Role) iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for ev := range t.Traverse(r).Events() {
			if ev.Kind == Enter && !yield(ev.Node) {
				return
			}
		}
	}
}

// FindFirstRoleSet is FindFirst computed with a pruning cursor.
func (t *Tree[S, P]) FindFirstRoleSet(r role.Role) (Handle, bool) {
	for h := range t.DescendantsRole(r) {
		if t.Role(h) == r {
			return h, true
		}
	}
	return Nil, false
}

// HowManyRoleSet is HowMany computed with a pruning cursor.
func (t *Tree[S, P]) HowManyRoleSet(r role.Role) int {
	n := 0
	for h := range t.DescendantsRole(r) {
		if t.Role(h) == r {
			n++
		}
	}
	return n
}

var stackPool = sync.Pool{
	New: func() any {
		s := make([]Handle, 0, 256)
		return &s
	},
}

// FindFirstStack is FindFirst computed with an explicit stack that only
// receives children whose subtree contains r.
func (t *Tree[S, P]) FindFirstStack(r role.Role) (Handle, bool) {
	t.mustIndexed()
	mustValidRole(r)
	if !t.qualifies(t.root, r) {
		return Nil, false
	}

	buf := stackPool.Get().(*[]Handle)
	defer func() {
		*buf = (*buf)[:0]
		stackPool.Put(buf)
	}()

	stack := append((*buf)[:0], t.root)
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.Role(h) == r {
			*buf = stack
			return h, true
		}
		for c := range t.arena.ChildrenReverse(h) {
			if t.qualifies(c, r) {
				stack = append(stack, c)
			}
		}
	}
	*buf = stack
	return Nil, false
}
