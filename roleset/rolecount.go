package roleset

import (
	"iter"
	"strconv"
	"strings"

	"github.com/hupe1980/roletree/role"
)

// RoleCount counts role occurrences and keeps the set of roles with a
// non-zero count.
//
// Merge sums counts, so merging the same summary twice counts it twice.
type RoleCount struct {
	counts  [role.Count]uint32
	support RoleSet
}

// CountOf returns a RoleCount with one occurrence of each given role.
func CountOf(roles ...role.Role) RoleCount {
	var c RoleCount
	for _, r := range roles {
		c.Add(r)
	}
	return c
}

// UnionCount returns the element-wise sum of a and b.
func UnionCount(a, b RoleCount) RoleCount {
	a.Merge(&b)
	return a
}

// Add records one occurrence of r.
func (c *RoleCount) Add(r role.Role) {
	c.support.Add(r)
	c.counts[r]++
}

// Merge adds every count of o to c.
func (c *RoleCount) Merge(o *RoleCount) {
	for r := range o.support.Roles() {
		c.counts[r] += o.counts[r]
	}
	c.support.Merge(&o.support)
}

// Reset zeroes every count.
func (c *RoleCount) Reset() {
	*c = RoleCount{}
}

// Count returns the number of occurrences of r.
func (c *RoleCount) Count(r role.Role) int {
	if !r.Valid() {
		panic("roleset: role " + r.String() + " outside the role universe")
	}
	return int(c.counts[r])
}

// Total returns the sum of all counts.
func (c *RoleCount) Total() int {
	n := 0
	for r := range c.support.Roles() {
		n += int(c.counts[r])
	}
	return n
}

// Contains reports whether r has a non-zero count.
func (c *RoleCount) Contains(r role.Role) bool {
	return c.support.Contains(r)
}

// Support returns the set of roles with a non-zero count.
func (c *RoleCount) Support() RoleSet {
	return c.support
}

// Counts yields (role, count) pairs for every role with a non-zero count,
// in ascending code order.
func (c *RoleCount) Counts() iter.Seq2[role.Role, int] {
	return func(yield func(role.Role, int) bool) {
		for r := range c.support.Roles() {
			if !yield(r, int(c.counts[r])) {
				return
			}
		}
	}
}

// String renders the counts as {name: n, ...}.
func (c *RoleCount) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for r, n := range c.Counts() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(r.String())
		sb.WriteString(": ")
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteByte('}')
	return sb.String()
}
