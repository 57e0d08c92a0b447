package tree

import (
	"iter"

	"github.com/hupe1980/roletree/role"
	"github.com/hupe1980/roletree/roleset"
)

// preorder yields the root and then every descendant in preorder.
func (t *Tree[S, P]) preorder() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		if !yield(t.root) {
			return
		}
		for h := range t.arena.Descendants(t.root) {
			if !yield(h) {
				return
			}
		}
	}
}

// FindFirst returns the first node in preorder whose role is r.
func (t *Tree[S, P]) FindFirst(r role.Role) (Handle, bool) {
	mustValidRole(r)
	for h := range t.preorder() {
		if t.Role(h) == r {
			return h, true
		}
	}
	return Nil, false
}

// HowMany returns the number of nodes whose role is r.
func (t *Tree[S, P]) HowMany(r role.Role) int {
	mustValidRole(r)
	n := 0
	for h := range t.preorder() {
		if t.Role(h) == r {
			n++
		}
	}
	return n
}

// MaxDepth returns the depth of the deepest node. A single node tree has
// depth 0.
func (t *Tree[S, P]) MaxDepth() int {
	d := 0
	for h := range t.preorder() {
		d = max(d, t.Depth(h))
	}
	return d
}

// UniqueRoles returns the distinct roles of the tree in ascending order.
func (t *Tree[S, P]) UniqueRoles() []role.Role {
	var s roleset.RoleSet
	for h := range t.preorder() {
		s.Add(t.Role(h))
	}
	return s.Slice()
}

// Leaves yields every node without children, in preorder.
func (t *Tree[S, P]) Leaves() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for h := range t.preorder() {
			if t.arena.IsLeaf(h) && !yield(h) {
				return
			}
		}
	}
}

// UniqueRolesRoleSet returns the distinct roles of the tree in ascending
// order, read from the root summary.
func (t *Tree[S, P]) UniqueRolesRoleSet() []role.Role {
	t.mustIndexed()
	return t.summary(t.root).Support().Slice()
}

// Stats describes a tree.
type Stats struct {
	Nodes       int `json:"nodes"`
	Leaves      int `json:"leaves"`
	MaxDepth    int `json:"max_depth"`
	UniqueRoles int `json:"unique_roles"`
}

// Stats computes the shape of the tree in one pass.
func (t *Tree[S, P]) Stats() Stats {
	var (
		s     Stats
		roles roleset.RoleSet
	)
	for h := range t.preorder() {
		s.Nodes++
		if t.arena.IsLeaf(h) {
			s.Leaves++
		}
		s.MaxDepth = max(s.MaxDepth, t.Depth(h))
		roles.Add(t.Role(h))
	}
	s.UniqueRoles = roles.Len()
	return s
}
