package tree

import (
	"github.com/hupe1980/roletree/role"
)

// FindNext returns the first node after from, in preorder, whose role is r.
// Subtrees whose summary lacks r are skipped.
func (t *Tree[S, P]) FindNext(from Handle, r role.Role) (Handle, bool) {
	t.mustIndexed()
	mustValidRole(r)

	// Below from.
	for c := range t.arena.Children(from) {
		if t.qualifies(c, r) {
			return t.firstIn(c, r)
		}
	}

	// Right of from and of each of its ancestors.
	for cur := from; cur != Nil; {
		for s := t.arena.NextSibling(cur); s != Nil; s = t.arena.NextSibling(s) {
			if t.qualifies(s, r) {
				return t.firstIn(s, r)
			}
		}
		p, ok := t.arena.Parent(cur)
		if !ok {
			break
		}
		cur = p
	}
	return Nil, false
}

// FindPrev returns the last node before from, in preorder, whose role is r.
// Subtrees whose summary lacks r are skipped.
func (t *Tree[S, P]) FindPrev(from Handle, r role.Role) (Handle, bool) {
	t.mustIndexed()
	mustValidRole(r)

	for cur := from; ; {
		for s := t.arena.PrevSibling(cur); s != Nil; s = t.arena.PrevSibling(s) {
			if t.qualifies(s, r) {
				return t.lastIn(s, r)
			}
		}
		p, ok := t.arena.Parent(cur)
		if !ok {
			return Nil, false
		}
		if t.Role(p) == r {
			return p, true
		}
		cur = p
	}
}

// firstIn returns the first node of the subtree of h with role r.
func (t *Tree[S, P]) firstIn(h Handle, r role.Role) (Handle, bool) {
	for h != Nil {
		if t.Role(h) == r {
			return h, true
		}
		next := Nil
		for c := range t.arena.Children(h) {
			if t.qualifies(c, r) {
				next = c
				break
			}
		}
		h = next
	}
	return Nil, false
}

// lastIn returns the last node of the subtree of h with role r: the last
// qualifying child is descended into before h itself is considered.
func (t *Tree[S, P]) lastIn(h Handle, r role.Role) (Handle, bool) {
	for h != Nil {
		next := Nil
		for c := range t.arena.ChildrenReverse(h) {
			if t.qualifies(c, r) {
				next = c
				break
			}
		}
		if next == Nil {
			if t.Role(h) == r {
				return h, true
			}
			return Nil, false
		}
		h = next
	}
	return Nil, false
}

// Occurrences returns how many nodes of t have role r, read from the root
// counts.
func Occurrences(t *CountTree, r role.Role) int {
	t.mustIndexed()
	mustValidRole(r)
	root := t.summary(t.root)
	return root.Count(r)
}
