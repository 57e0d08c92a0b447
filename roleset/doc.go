// Package roleset provides the subtree summaries kept on every indexed node.
//
// RoleSet is a fixed-width bitset over the role universe: bit i is set when
// role i occurs in the summarized subtree. RoleCount additionally records
// how often each role occurs and keeps a RoleSet of its non-zero counts.
//
// Both types are plain values. The zero value is the empty summary, which
// is the identity of Union and Merge.
//
//	s := roleset.Of(role.Heading, role.Link)
//	s = s.Union(roleset.Of(role.Table))
//	for r := range s.Roles() {
//	    fmt.Println(r) // heading, link, table (ascending code order)
//	}
package roleset
