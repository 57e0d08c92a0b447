// Package arena provides the append-only node store behind indexed trees.
//
// Nodes live in one contiguous slice and are addressed by Handle, the index
// assigned at insertion. Handles are never reused or invalidated: there is no
// removal. Each node records its parent, first/last child and both siblings,
// so every navigation step is O(1) and the walks need no recursion and no
// allocation.
//
// # Safety
//
// Handles are trusted. Passing a handle that this arena did not issue is a
// programming error and panics.
//
// # Concurrency Model
//
// Insert is single-writer. Once construction is finished the arena is
// read-only and may be shared by any number of goroutines.
package arena
