package tree

import "errors"

var (
	// ErrNotIndexed is the panic value of pruned queries on a tree whose
	// index has not been built.
	ErrNotIndexed = errors.New("tree: index not built")

	// ErrInvalidTree is returned by Validate when the structure or the index
	// is inconsistent.
	ErrInvalidTree = errors.New("tree: invalid structure")
)
