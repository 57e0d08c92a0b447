// Package testutil provides testing utilities for roletree.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Documents
//
//	rng := testutil.NewRNG(seed)
//	doc := rng.Document(testutil.DocumentOptions{Nodes: 10_000})
//
// # Fixtures
//
// Fixtures are built on first use and shared read-only by every test of the
// process:
//
//	doc := testutil.Sample()        // A(B, C(D))
//	big, err := testutil.Large()    // 50k node document with skewed roles
package testutil
