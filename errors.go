package roletree

import (
	"errors"
	"fmt"

	"github.com/hupe1980/roletree/a11y"
	"github.com/hupe1980/roletree/blobstore"
	"github.com/hupe1980/roletree/role"
	"github.com/hupe1980/roletree/tree"
)

var (
	// ErrEmptyDocument is returned when a document has no root node.
	ErrEmptyDocument = a11y.ErrEmptyDocument
	// ErrMalformedDocument is returned when a node lacks its role or its
	// children list.
	ErrMalformedDocument = a11y.ErrMalformedDocument
	// ErrUnknownRole is returned when a document names a role outside the
	// role universe.
	ErrUnknownRole = role.ErrUnknownRole
	// ErrNotFound is returned when a stored document does not exist.
	ErrNotFound = blobstore.ErrNotFound
	// ErrNotIndexed is the panic value of pruned queries on a tree whose
	// index has not been built.
	ErrNotIndexed = tree.ErrNotIndexed
	// ErrMismatch is wrapped by every MismatchError.
	ErrMismatch = errors.New("strategy mismatch")
)

// MismatchError reports two query strategies that disagree.
type MismatchError struct {
	// Flavor is the summary flavor of the tree ("bool" or "count").
	Flavor string
	// Query names the diverging strategy.
	Query string
	// Role is the queried role, or role.Invalid for role-independent
	// queries.
	Role role.Role
	Want string
	Got  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s tree: %s(%s): want %s, got %s", e.Flavor, e.Query, e.Role, e.Want, e.Got)
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }
