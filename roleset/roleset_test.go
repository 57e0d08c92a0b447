package roleset

import (
	"testing"

	"github.com/hupe1980/roletree/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleSet_Basic(t *testing.T) {
	var s RoleSet
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(role.Heading))

	s.Add(role.Heading)
	assert.True(t, s.Contains(role.Heading))
	assert.False(t, s.Contains(role.Link))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, Of(role.Heading), s)

	s.Reset()
	assert.True(t, s.IsEmpty())
}

func TestRoleSet_UnionLaws(t *testing.T) {
	a := Of(role.Invalid, role.Heading, role.PushButtonMenu)
	b := Of(role.Link, role.Heading)
	c := Of(role.Table, role.Suggestion)

	assert.Equal(t, Union(a, b), Union(b, a), "commutative")
	assert.Equal(t, Union(Union(a, b), c), Union(a, Union(b, c)), "associative")
	assert.Equal(t, a, Union(a, a), "idempotent")
	assert.Equal(t, a, Union(a, Empty), "identity")

	u := Union(a, b)
	assert.Equal(t, 4, u.Len())
	assert.True(t, u.ContainsAll(a))
	assert.True(t, u.ContainsAll(b))
	assert.False(t, u.ContainsAll(c))
	assert.True(t, u.ContainsAny(Of(role.Link)))
	assert.False(t, u.ContainsAny(c))
	assert.Equal(t, Of(role.Heading), a.Intersect(b))
}

func TestRoleSet_Merge(t *testing.T) {
	a := Of(role.Heading)
	b := Of(role.Link)
	a.Merge(&b)
	assert.Equal(t, Of(role.Heading, role.Link), a)
	assert.Equal(t, Of(role.Link), b)

	assert.Equal(t, a, Of(role.Heading).With(role.Link))
	assert.Equal(t, a, a.Support())
}

func TestRoleSet_All(t *testing.T) {
	all := All()
	assert.Equal(t, role.Count, all.Len())
	for r := range role.All() {
		assert.True(t, all.Contains(r))
	}
	assert.Equal(t, all, Union(all, Of(role.PushButtonMenu)))
}

func TestRoleSet_RolesAscendingAndRestartable(t *testing.T) {
	s := Of(role.PushButtonMenu, role.Invalid, role.Heading, role.Window, role.Mark)
	want := []role.Role{role.Invalid, role.Window, role.Heading, role.Mark, role.PushButtonMenu}

	seq := s.Roles()
	var first, second []role.Role
	for r := range seq {
		first = append(first, r)
	}
	for r := range seq {
		second = append(second, r)
	}
	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
	assert.Equal(t, want, s.Slice())

	var stopped []role.Role
	for r := range seq {
		stopped = append(stopped, r)
		if len(stopped) == 2 {
			break
		}
	}
	assert.Equal(t, want[:2], stopped)

	all := All().Slice()
	require.Len(t, all, role.Count)
	for i, r := range all {
		assert.Equal(t, role.Role(i), r)
	}
}

func TestRoleSet_OutOfRangePanics(t *testing.T) {
	var s RoleSet
	assert.Panics(t, func() { s.Add(role.Role(role.Count)) })
	assert.Panics(t, func() { _ = s.Contains(role.Role(200)) })
}

func TestRoleSet_String(t *testing.T) {
	assert.Equal(t, "{}", Empty.String())
	assert.Equal(t, "{push button, heading}", Of(role.Heading, role.PushButton).String())
}

func TestRoleCount(t *testing.T) {
	c := CountOf(role.Heading, role.Heading, role.Link)
	assert.Equal(t, 2, c.Count(role.Heading))
	assert.Equal(t, 1, c.Count(role.Link))
	assert.Equal(t, 0, c.Count(role.Table))
	assert.Equal(t, 3, c.Total())
	assert.Equal(t, Of(role.Heading, role.Link), c.Support())
	assert.True(t, c.Contains(role.Heading))
	assert.False(t, c.Contains(role.Table))

	d := CountOf(role.Table, role.Heading)
	u := UnionCount(c, d)
	assert.Equal(t, 3, u.Count(role.Heading))
	assert.Equal(t, 1, u.Count(role.Table))
	assert.Equal(t, 5, u.Total())
	assert.Equal(t, Of(role.Heading, role.Link, role.Table), u.Support())

	// Sums are not idempotent.
	twice := UnionCount(c, c)
	assert.Equal(t, 4, twice.Count(role.Heading))
	assert.Equal(t, c.Support(), twice.Support())

	got := map[role.Role]int{}
	for r, n := range u.Counts() {
		got[r] = n
	}
	assert.Equal(t, map[role.Role]int{role.Heading: 3, role.Link: 1, role.Table: 1}, got)
	assert.Equal(t, "{table: 1, heading: 3, link: 1}", u.String())

	u.Reset()
	assert.Equal(t, 0, u.Total())
	assert.True(t, u.Support().IsEmpty())
}

func TestRoleCount_SupportTracksCounts(t *testing.T) {
	var c RoleCount
	for r := range role.All() {
		if r%3 == 0 {
			c.Add(r)
		}
	}
	for r := range role.All() {
		assert.Equal(t, c.Count(r) > 0, c.Support().Contains(r), "role %s", r)
	}
	assert.Panics(t, func() { c.Add(role.Role(role.Count)) })
}
