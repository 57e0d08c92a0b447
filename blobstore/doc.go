// Package blobstore provides the storage abstraction documents are loaded
// from and saved to.
//
// A document is one immutable blob, addressed by name. The name's extension
// selects the codec compression (see codec.CompressionFor), for example
// "pages/home.json.zst". Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and caches
//   - LocalStore: local filesystem, read through mmap
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible servers
//   - RateLimited: wraps any store and throttles read bandwidth
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Blob exposes ranged reads so remote stores can stream:
//
//	type Blob interface {
//	    io.Closer
//	    Size() int64
//	    ReadAt(ctx, p, off) (int, error)
//	    ReadRange(ctx, off, len) (io.ReadCloser, error)
//	}
package blobstore
