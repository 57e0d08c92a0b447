package blobstore

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// RateLimited wraps a BlobStore and limits read bandwidth across all blobs
// opened through it. Writes, deletes and listings pass through.
type RateLimited struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewRateLimited limits reads from inner to bytesPerSec. A limit of zero or
// less disables throttling.
func NewRateLimited(inner BlobStore, bytesPerSec int64) *RateLimited {
	s := &RateLimited{inner: inner}
	if bytesPerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), int(bytesPerSec))
	}
	return s
}

// Open opens a blob whose reads wait for the limiter.
func (s *RateLimited) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	if s.limiter == nil {
		return b, nil
	}
	return &limitedBlob{inner: b, limiter: s.limiter}, nil
}

func (s *RateLimited) Put(ctx context.Context, name string, data []byte) error {
	return s.inner.Put(ctx, name, data)
}

func (s *RateLimited) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

func (s *RateLimited) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// wait blocks until n bytes may be read. Requests larger than the burst are
// split so WaitN never rejects them.
func wait(ctx context.Context, l *rate.Limiter, n int) error {
	for n > 0 {
		step := min(n, l.Burst())
		if err := l.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}

// limitedBlob hides Mappable on purpose so every read is metered.
type limitedBlob struct {
	inner   Blob
	limiter *rate.Limiter
}

func (b *limitedBlob) Size() int64  { return b.inner.Size() }
func (b *limitedBlob) Close() error { return b.inner.Close() }

func (b *limitedBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := wait(ctx, b.limiter, len(p)); err != nil {
		return 0, err
	}
	return b.inner.ReadAt(ctx, p, off)
}

func (b *limitedBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	rc, err := b.inner.ReadRange(ctx, off, length)
	if err != nil {
		return nil, err
	}
	return &limitedReader{ctx: ctx, rc: rc, limiter: b.limiter}, nil
}

// limitedReader meters a stream chunk by chunk.
type limitedReader struct {
	ctx     context.Context
	rc      io.ReadCloser
	limiter *rate.Limiter
}

func (r *limitedReader) Read(p []byte) (int, error) {
	if len(p) > r.limiter.Burst() {
		p = p[:r.limiter.Burst()]
	}
	n, err := r.rc.Read(p)
	if n > 0 {
		if werr := r.limiter.WaitN(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

func (r *limitedReader) Close() error {
	return r.rc.Close()
}
