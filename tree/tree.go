package tree

import (
	"iter"

	"github.com/hupe1980/roletree/a11y"
	"github.com/hupe1980/roletree/internal/arena"
	"github.com/hupe1980/roletree/role"
	"github.com/hupe1980/roletree/roleset"
)

// Handle identifies a node of a Tree. Handles are issued in preorder, so
// comparing two handles compares their preorder positions.
type Handle = arena.Handle

// Nil is the absent handle.
const Nil = arena.Nil

// Tree is a document loaded into an arena, with one summary per node.
type Tree[S comparable, P Summary[S]] struct {
	arena   *arena.Arena[Node[S]]
	depth   []uint32
	root    Handle
	indexed bool
	par     ParallelOptions
}

// BoolTree summarizes subtrees with the set of roles they contain.
type BoolTree = Tree[roleset.RoleSet, *roleset.RoleSet]

// CountTree summarizes subtrees with per-role occurrence counts.
type CountTree = Tree[roleset.RoleCount, *roleset.RoleCount]

// FromNode loads doc into a new tree. The index is not built; call
// BuildIndex before using pruned queries.
//
// Construction is iterative, so arbitrarily deep documents are accepted.
func FromNode[S comparable, P Summary[S]](doc *a11y.Node) *Tree[S, P] {
	type item struct {
		node   *a11y.Node
		parent Handle
	}

	n := doc.Stats().Nodes
	t := &Tree[S, P]{
		arena: arena.New[Node[S]](n),
		depth: make([]uint32, 0, n),
	}

	// Children are pushed right to left so they pop in document order, and
	// a subtree is fully inserted before its next sibling pops.
	stack := []item{{doc, Nil}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		h := t.arena.Insert(Node[S]{Role: it.node.Role}, it.parent)
		if it.parent == Nil {
			t.depth = append(t.depth, 0)
		} else {
			t.depth = append(t.depth, t.depth[it.parent]+1)
		}

		for i := len(it.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{&it.node.Children[i], h})
		}
	}
	return t
}

// NewBool loads doc into a BoolTree.
func NewBool(doc *a11y.Node) *BoolTree {
	return FromNode[roleset.RoleSet, *roleset.RoleSet](doc)
}

// NewCount loads doc into a CountTree.
func NewCount(doc *a11y.Node) *CountTree {
	return FromNode[roleset.RoleCount, *roleset.RoleCount](doc)
}

// BuildIndex computes every summary: a node's own role merged with the
// summaries of all of its descendants.
//
// Summaries are reset first, so calling BuildIndex again leaves them
// unchanged for both flavors.
func (t *Tree[S, P]) BuildIndex() {
	n := t.arena.Len()
	for h := range Handle(n) {
		nd := t.arena.Get(h)
		s := P(&nd.Summary)
		s.Reset()
		s.Add(nd.Role)
	}

	// Children have larger handles than their parent, so walking handles
	// backwards finishes every subtree before it is merged upward.
	for h := Handle(n - 1); h > t.root; h-- {
		p, ok := t.arena.Parent(h)
		if !ok {
			continue
		}
		P(&t.arena.Get(p).Summary).Merge(&t.arena.Get(h).Summary)
	}
	t.indexed = true
}

// Indexed reports whether BuildIndex has run.
func (t *Tree[S, P]) Indexed() bool {
	return t.indexed
}

// Root returns the root handle.
func (t *Tree[S, P]) Root() Handle {
	return t.root
}

// Len returns the number of nodes.
func (t *Tree[S, P]) Len() int {
	return t.arena.Len()
}

// Role returns the role of h.
func (t *Tree[S, P]) Role(h Handle) role.Role {
	return t.arena.Get(h).Role
}

// Summary returns a copy of the summary of h. It is the empty summary until
// BuildIndex has run.
func (t *Tree[S, P]) Summary(h Handle) S {
	return t.arena.Get(h).Summary
}

// Parent returns the parent of h; ok is false for the root.
func (t *Tree[S, P]) Parent(h Handle) (Handle, bool) {
	return t.arena.Parent(h)
}

// Children yields the children of h left to right.
func (t *Tree[S, P]) Children(h Handle) iter.Seq[Handle] {
	return t.arena.Children(h)
}

// ChildCount returns the number of children of h.
func (t *Tree[S, P]) ChildCount(h Handle) int {
	return t.arena.ChildCount(h)
}

// IsLeaf reports whether h has no children.
func (t *Tree[S, P]) IsLeaf(h Handle) bool {
	return t.arena.IsLeaf(h)
}

// Descendants yields the nodes below h in preorder, h excluded.
func (t *Tree[S, P]) Descendants(h Handle) iter.Seq[Handle] {
	return t.arena.Descendants(h)
}

// Ancestors yields the ancestors of h, nearest first, h excluded.
func (t *Tree[S, P]) Ancestors(h Handle) iter.Seq[Handle] {
	return t.arena.Ancestors(h)
}

// Depth returns the number of ancestors of h. The root has depth 0.
func (t *Tree[S, P]) Depth(h Handle) int {
	if !t.arena.Valid(h) {
		panic("tree: invalid handle " + h.String())
	}
	return int(t.depth[h])
}

// Document converts the subtree of h back into a document.
func (t *Tree[S, P]) Document(h Handle) a11y.Node {
	type item struct {
		h   Handle
		dst *a11y.Node
	}

	out := a11y.Node{Role: t.Role(h)}
	stack := []item{{h, &out}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n := t.arena.ChildCount(it.h); n > 0 {
			it.dst.Children = make([]a11y.Node, n)
			i := 0
			for c := range t.arena.Children(it.h) {
				it.dst.Children[i].Role = t.Role(c)
				stack = append(stack, item{c, &it.dst.Children[i]})
				i++
			}
		}
	}
	return out
}

// qualifies reports whether the subtree of h contains r.
func (t *Tree[S, P]) qualifies(h Handle, r role.Role) bool {
	return P(&t.arena.Get(h).Summary).Contains(r)
}

func (t *Tree[S, P]) mustIndexed() {
	if !t.indexed {
		panic(ErrNotIndexed)
	}
}

func mustValidRole(r role.Role) {
	if !r.Valid() {
		panic("tree: role " + r.String() + " outside the role universe")
	}
}

func (t *Tree[S, P]) summary(h Handle) P {
	return P(&t.arena.Get(h).Summary)
}
