package tree

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Validate checks the structure of the tree: every node is reached exactly
// once from the root, in handle order, parent and child links agree and
// depths match. When the index is built it also checks every summary
// against its node's role and its children's summaries.
func (t *Tree[S, P]) Validate() error {
	n := t.arena.Len()
	if n == 0 {
		return fmt.Errorf("%w: no nodes", ErrInvalidTree)
	}
	if p, ok := t.arena.Parent(t.root); ok {
		return fmt.Errorf("%w: root %s has parent %s", ErrInvalidTree, t.root, p)
	}

	visited := bitset.New(uint(n))
	next := t.root
	for h := range t.preorder() {
		if visited.Test(uint(h)) {
			return fmt.Errorf("%w: node %s reached twice", ErrInvalidTree, h)
		}
		visited.Set(uint(h))
		if h != next {
			return fmt.Errorf("%w: node %s reached at preorder position %d", ErrInvalidTree, h, next)
		}
		next++

		if err := t.validateNode(h); err != nil {
			return err
		}
	}
	if c := visited.Count(); c != uint(n) {
		return fmt.Errorf("%w: %d of %d nodes reachable from the root", ErrInvalidTree, c, n)
	}
	return nil
}

func (t *Tree[S, P]) validateNode(h Handle) error {
	if !t.Role(h).Valid() {
		return fmt.Errorf("%w: node %s has role %s", ErrInvalidTree, h, t.Role(h))
	}
	if p, ok := t.arena.Parent(h); ok {
		if t.depth[h] != t.depth[p]+1 {
			return fmt.Errorf("%w: node %s has depth %d under parent depth %d", ErrInvalidTree, h, t.depth[h], t.depth[p])
		}
	} else if t.depth[h] != 0 {
		return fmt.Errorf("%w: root %s has depth %d", ErrInvalidTree, h, t.depth[h])
	}

	var want S
	P(&want).Add(t.Role(h))

	children := 0
	prev := Nil
	for c := range t.arena.Children(h) {
		if p, _ := t.arena.Parent(c); p != h {
			return fmt.Errorf("%w: child %s of %s points to parent %s", ErrInvalidTree, c, h, p)
		}
		if t.arena.PrevSibling(c) != prev {
			return fmt.Errorf("%w: sibling links of %s are broken", ErrInvalidTree, c)
		}
		prev = c
		children++
		P(&want).Merge(&t.arena.Get(c).Summary)
	}
	if children != t.arena.ChildCount(h) {
		return fmt.Errorf("%w: node %s lists %d children, links reach %d", ErrInvalidTree, h, t.arena.ChildCount(h), children)
	}
	if t.arena.LastChild(h) != prev {
		return fmt.Errorf("%w: last child of %s is %s, links end at %s", ErrInvalidTree, h, t.arena.LastChild(h), prev)
	}

	if t.indexed && want != t.arena.Get(h).Summary {
		return fmt.Errorf("%w: summary of %s does not match its subtree", ErrInvalidTree, h)
	}
	return nil
}
