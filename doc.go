// Package roletree indexes accessibility trees for fast structural queries.
//
// Every node of a loaded document carries a summary of the roles present in
// its subtree, so queries such as "first node with role R" or "how many
// nodes have role R" skip subtrees that cannot contain the target.
//
// # Quick Start
//
//	ctx := context.Background()
//	doc, _ := roletree.LoadFile(ctx, "page.json.zst")
//	h, ok := doc.Bool.FindFirstStack(role.PushButton)
//	n := tree.Occurrences(doc.Count, role.Link)
//
// Documents can also be read from any blobstore.BlobStore:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("pages/"))
//	doc, _ := roletree.FromStore(ctx, store, "home.json", roletree.WithIOLimit(8<<20))
//
// # Summary Flavors
//
// A Document holds the same tree twice:
//
//   - Bool summarizes subtrees with a RoleSet (one bit per role)
//   - Count summarizes subtrees with a RoleCount (one counter per role)
//
// Both flavors answer the same queries. Count additionally answers
// occurrence counts from the root in constant time.
//
// # Query Strategies
//
// Each tree offers plain scans, pruned cursor walks, pruned stack walks and
// parallel variants of both. Verify cross-checks all of them.
package roletree
