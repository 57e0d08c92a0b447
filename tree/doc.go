// Package tree implements the role-indexed tree and its query engine.
//
// A Tree holds every node of one document in an arena, numbered in preorder.
// After BuildIndex each node carries a summary of the roles found anywhere in
// its subtree, and queries use it to skip subtrees that cannot contain the
// role they look for.
//
// Two summary flavors are provided:
//
//   - BoolTree keeps a roleset.RoleSet (which roles occur).
//   - CountTree keeps a roleset.RoleCount (how often each role occurs).
//
// Both share one generic engine, parameterized by the Summary constraint.
//
// # Query Strategies
//
// Every query exists in several strategies that return identical results:
//
//   - Plain: FindFirst, HowMany, MaxDepth, UniqueRoles, Leaves. Usable before
//     BuildIndex.
//   - Pruned cursor: Traverse, DescendantsRole, FindFirstRoleSet,
//     HowManyRoleSet, UniqueRolesRoleSet.
//   - Pruned stack: FindFirstStack.
//   - Parallel: ParFindFirst, ParHowMany, ParMaxDepth, ParUniqueRoles,
//     ParLeaves, ParFindFirstRoleSet, ParHowManyRoleSet.
//
// FindNext and FindPrev move from a node to the next or previous node with a
// role, in preorder.
//
// # Errors
//
// Handles not issued by the tree, roles outside the role universe and pruned
// queries on a tree without an index are programming errors and panic. A
// query that matches nothing returns (Nil, false) or zero.
//
// # Concurrency Model
//
// Construction and BuildIndex are single-writer. Afterwards a Tree is
// read-only and any number of goroutines may query it concurrently,
// including parallel queries. BuildIndex must not run concurrently with
// queries.
package tree
