// Package role defines the universe of accessibility roles a tree node can
// carry.
//
// Roles follow the AT-SPI numbering: a dense, totally ordered set of small
// integer codes from Invalid (0) to PushButtonMenu (Count-1). Index
// structures in roleset and tree rely on that density to use fixed-width
// bitsets.
//
// # JSON
//
// A Role encodes as its integer code. Decoding accepts either the code or
// the display name:
//
//	{"role": 43}
//	{"role": "push button"}
//
// Any other value fails with ErrUnknownRole.
package role
