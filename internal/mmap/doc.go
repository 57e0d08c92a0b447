// Package mmap maps document files into memory read-only.
//
//	m, err := mmap.Open("page.json")
//	if err != nil { ... }
//	defer m.Close()
//
//	m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// On Unix the file is mapped with mmap(2) and madvise(2) hints are passed
// through. Elsewhere the file is read into memory and hints are ignored.
//
// # Thread Safety
//
// Bytes may be read concurrently. Close is idempotent, but callers must not
// touch the slice returned by Bytes after Close returns.
package mmap
