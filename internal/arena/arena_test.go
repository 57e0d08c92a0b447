package arena

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build creates
//
//	a
//	├── b
//	│   ├── d
//	│   └── e
//	└── c
//	    └── f
func build(t *testing.T) (*Arena[string], map[string]Handle) {
	t.Helper()
	a := New[string](8)
	h := map[string]Handle{}
	h["a"] = a.Insert("a", Nil)
	h["b"] = a.Insert("b", h["a"])
	h["d"] = a.Insert("d", h["b"])
	h["e"] = a.Insert("e", h["b"])
	h["c"] = a.Insert("c", h["a"])
	h["f"] = a.Insert("f", h["c"])
	return a, h
}

func names(a *Arena[string], hs []Handle) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = *a.Get(h)
	}
	return out
}

func TestArena_Insert(t *testing.T) {
	a, h := build(t)

	assert.Equal(t, 6, a.Len())
	assert.Equal(t, Handle(0), h["a"])
	assert.Equal(t, Handle(5), h["f"])

	p, ok := a.Parent(h["a"])
	assert.False(t, ok)
	assert.Equal(t, Nil, p)

	p, ok = a.Parent(h["e"])
	require.True(t, ok)
	assert.Equal(t, h["b"], p)

	assert.Equal(t, h["b"], a.FirstChild(h["a"]))
	assert.Equal(t, h["c"], a.LastChild(h["a"]))
	assert.Equal(t, h["c"], a.NextSibling(h["b"]))
	assert.Equal(t, h["b"], a.PrevSibling(h["c"]))
	assert.Equal(t, Nil, a.NextSibling(h["c"]))
	assert.Equal(t, Nil, a.PrevSibling(h["b"]))
	assert.Equal(t, 2, a.ChildCount(h["b"]))
	assert.Equal(t, 0, a.ChildCount(h["f"]))
	assert.True(t, a.IsLeaf(h["d"]))
	assert.False(t, a.IsLeaf(h["c"]))

	*a.Get(h["d"]) = "D"
	assert.Equal(t, "D", *a.Get(h["d"]))
}

func TestArena_Children(t *testing.T) {
	a, h := build(t)

	assert.Equal(t, []string{"b", "c"}, names(a, slices.Collect(a.Children(h["a"]))))
	assert.Equal(t, []string{"c", "b"}, names(a, slices.Collect(a.ChildrenReverse(h["a"]))))
	assert.Empty(t, slices.Collect(a.Children(h["f"])))

	for c := range a.Children(h["a"]) {
		assert.Equal(t, h["b"], c)
		break
	}
}

func TestArena_Descendants(t *testing.T) {
	a, h := build(t)

	assert.Equal(t, []string{"b", "d", "e", "c", "f"}, names(a, slices.Collect(a.Descendants(h["a"]))))
	assert.Equal(t, []string{"d", "e"}, names(a, slices.Collect(a.Descendants(h["b"]))))
	assert.Equal(t, []string{"f"}, names(a, slices.Collect(a.Descendants(h["c"]))))
	assert.Empty(t, slices.Collect(a.Descendants(h["e"])))

	var firstTwo []Handle
	for d := range a.Descendants(h["a"]) {
		firstTwo = append(firstTwo, d)
		if len(firstTwo) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"b", "d"}, names(a, firstTwo))
}

func TestArena_Ancestors(t *testing.T) {
	a, h := build(t)

	assert.Equal(t, []string{"b", "a"}, names(a, slices.Collect(a.Ancestors(h["e"]))))
	assert.Empty(t, slices.Collect(a.Ancestors(h["a"])))
	assert.Equal(t, 2, a.Depth(h["f"]))
	assert.Equal(t, 0, a.Depth(h["a"]))
}

func TestArena_Stats(t *testing.T) {
	a, _ := build(t)
	assert.Equal(t, Stats{Nodes: 6, Roots: 1, Leaves: 3}, a.Stats())
}

func TestArena_InvalidHandlePanics(t *testing.T) {
	a, _ := build(t)

	assert.False(t, a.Valid(Nil))
	assert.False(t, a.Valid(Handle(6)))
	assert.Panics(t, func() { a.Get(Handle(6)) })
	assert.Panics(t, func() { a.Insert("x", Handle(42)) })
	assert.Panics(t, func() { _ = a.Descendants(Nil) })
}

func TestArena_DeepChain(t *testing.T) {
	const depth = 100_000
	a := New[int](depth)
	parent := Nil
	for i := range depth {
		parent = a.Insert(i, parent)
	}

	n := 0
	for range a.Descendants(0) {
		n++
	}
	assert.Equal(t, depth-1, n)
	assert.Equal(t, depth-1, a.Depth(parent))
}

func TestHandle_String(t *testing.T) {
	assert.Equal(t, "nil", Nil.String())
	assert.Equal(t, "#7", Handle(7).String())
	assert.True(t, Nil.IsNil())
}
