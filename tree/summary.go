package tree

import (
	"github.com/hupe1980/roletree/role"
	"github.com/hupe1980/roletree/roleset"
)

// Summary is the capability a subtree summary must provide. S is the value
// type stored in each node; the methods are implemented on *S.
type Summary[S any] interface {
	*S
	// Add records one occurrence of a role.
	Add(role.Role)
	// Merge folds another summary into this one.
	Merge(*S)
	// Contains reports whether the role occurs.
	Contains(role.Role) bool
	// Support returns the roles that occur.
	Support() roleset.RoleSet
	// Reset restores the empty summary.
	Reset()
}

// Node is the payload of every tree node.
type Node[S any] struct {
	Role    role.Role
	Summary S
}

