// Package a11y holds the input document of an indexed tree: a nested value
// of {role, children} as produced by an accessibility bus walker.
//
//	{"role": 69, "children": [
//	    {"role": "push button", "children": []},
//	    {"role": 88, "children": []}
//	]}
//
// Documents are decoded once at load time. Every role must resolve to a
// member of the role universe; anything else fails the decode with
// role.ErrUnknownRole before a tree is built.
//
// Format renders a document as line art for humans:
//
//	── window(2)
//	├── push button(0)
//	└── link(0)
package a11y
