package roleset

import (
	"iter"
	"math/bits"
	"strings"

	"github.com/hupe1980/roletree/role"
)

const (
	wordBits = 64
	numWords = (role.Count + wordBits - 1) / wordBits

	// lastWordMask keeps the bits of the final word that map to real roles.
	lastWordMask = ^uint64(0) >> (numWords*wordBits - role.Count)
)

// RoleSet is a set of roles stored as a fixed-width bitset.
type RoleSet struct {
	words [numWords]uint64
}

// Empty is the set with no roles.
var Empty RoleSet

// universe has every role bit set.
var universe = func() RoleSet {
	var s RoleSet
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	s.words[numWords-1] &= lastWordMask
	return s
}()

// All returns the set containing every role of the universe.
func All() RoleSet {
	return universe
}

// Of returns the set containing exactly the given roles.
func Of(roles ...role.Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		s.Add(r)
	}
	return s
}

// Union returns a ∪ b.
func Union(a, b RoleSet) RoleSet {
	return a.Union(b)
}

// index returns the word and mask of r. Roles outside the universe panic.
func index(r role.Role) (int, uint64) {
	if !r.Valid() {
		panic("roleset: role " + r.String() + " outside the role universe")
	}
	return int(r) / wordBits, uint64(1) << (uint(r) % wordBits)
}

// Add inserts r.
func (s *RoleSet) Add(r role.Role) {
	w, m := index(r)
	s.words[w] |= m
}

// Merge adds every role of o to s.
func (s *RoleSet) Merge(o *RoleSet) {
	for i := range s.words {
		s.words[i] |= o.words[i]
	}
}

// Reset clears every bit.
func (s *RoleSet) Reset() {
	*s = RoleSet{}
}

// With returns a copy of s with r added.
func (s RoleSet) With(r role.Role) RoleSet {
	s.Add(r)
	return s
}

// Union returns s ∪ o.
func (s RoleSet) Union(o RoleSet) RoleSet {
	for i := range s.words {
		s.words[i] |= o.words[i]
	}
	return s
}

// Intersect returns s ∩ o.
func (s RoleSet) Intersect(o RoleSet) RoleSet {
	for i := range s.words {
		s.words[i] &= o.words[i]
	}
	return s
}

// Contains reports whether r is in s.
func (s RoleSet) Contains(r role.Role) bool {
	w, m := index(r)
	return s.words[w]&m != 0
}

// ContainsAll reports whether every role of o is in s.
func (s RoleSet) ContainsAll(o RoleSet) bool {
	for i := range s.words {
		if o.words[i]&^s.words[i] != 0 {
			return false
		}
	}
	return true
}

// ContainsAny reports whether s and o share a role.
func (s RoleSet) ContainsAny(o RoleSet) bool {
	for i := range s.words {
		if s.words[i]&o.words[i] != 0 {
			return true
		}
	}
	return false
}

// Support returns s itself; a RoleSet is its own support.
func (s RoleSet) Support() RoleSet {
	return s
}

// IsEmpty reports whether no role is set.
func (s RoleSet) IsEmpty() bool {
	return s == Empty
}

// Len returns the number of roles in s.
func (s RoleSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Roles yields the members of s in ascending code order. The sequence can be
// ranged over any number of times.
func (s RoleSet) Roles() iter.Seq[role.Role] {
	return func(yield func(role.Role) bool) {
		for i, w := range s.words {
			for w != 0 {
				tz := bits.TrailingZeros64(w)
				if !yield(role.Role(i*wordBits + tz)) {
					return
				}
				w &= w - 1
			}
		}
	}
}

// Slice collects Roles into a new slice.
func (s RoleSet) Slice() []role.Role {
	out := make([]role.Role, 0, s.Len())
	for r := range s.Roles() {
		out = append(out, r)
	}
	return out
}

// String renders the set as {name, name, ...}.
func (s RoleSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for r := range s.Roles() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(r.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
