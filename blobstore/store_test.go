package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore runs the behavior every BlobStore must share.
func testStore(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()

	data := []byte(`{"role": 69, "children": [{"role": 43}]}`)
	require.NoError(t, store.Put(ctx, "pages/home.json", data))
	require.NoError(t, store.Put(ctx, "pages/about.json.zst", []byte("zst")))
	require.NoError(t, store.Put(ctx, "other.json", []byte("{}")))

	b, err := store.Open(ctx, "pages/home.json")
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), b.Size())

	buf := make([]byte, 4)
	n, err := b.ReadAt(ctx, buf, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, `role`, string(buf))

	n, err = b.ReadAt(ctx, make([]byte, 10), int64(len(data))-3)
	assert.Equal(t, 3, n)
	assert.ErrorIs(t, err, io.EOF)

	rc, err := b.ReadRange(ctx, 1, 6)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, `"role"`, string(got))
	require.NoError(t, b.Close())

	all, err := ReadAll(ctx, store, "pages/home.json")
	require.NoError(t, err)
	assert.Equal(t, data, all)

	names, err := store.List(ctx, "pages/")
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/about.json.zst", "pages/home.json"}, names)

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, names, 3)

	// Overwrite.
	require.NoError(t, store.Put(ctx, "other.json", []byte("[]")))
	all, err = ReadAll(ctx, store, "other.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(all))

	require.NoError(t, store.Delete(ctx, "other.json"))
	require.NoError(t, store.Delete(ctx, "other.json"))
	_, err = store.Open(ctx, "other.json")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ReadAll(ctx, store, "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestMemoryStore_PutCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	data := []byte("abc")
	require.NoError(t, s.Put(ctx, "a", data))
	data[0] = 'x'

	got, err := ReadAll(ctx, s, "a")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	testStore(t, NewLocalStore(dir))

	_, err := os.Stat(filepath.Join(dir, "pages", "home.json"))
	assert.NoError(t, err)
}

func TestLocalStore_EmptyBlob(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStore(t.TempDir())
	require.NoError(t, s.Put(ctx, "empty", nil))

	got, err := ReadAll(ctx, s, "empty")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalStore_ListMissingRoot(t *testing.T) {
	s := NewLocalStore(filepath.Join(t.TempDir(), "nope"))
	names, err := s.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRateLimited(t *testing.T) {
	testStore(t, NewRateLimited(NewMemoryStore(), 1<<20))
	testStore(t, NewRateLimited(NewMemoryStore(), 0))
}

func TestRateLimited_Throttles(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	require.NoError(t, inner.Put(ctx, "doc", make([]byte, 3000)))

	// 1000 B/s with a full 1000 byte burst: 3000 bytes need about 2s.
	s := NewRateLimited(inner, 1000)
	b, err := s.Open(ctx, "doc")
	require.NoError(t, err)
	_, isMappable := b.(Mappable)
	assert.False(t, isMappable)

	start := time.Now()
	_, err = ReadAll(ctx, s, "doc")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 1500*time.Millisecond)
}

func TestRateLimited_Canceled(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	require.NoError(t, inner.Put(ctx, "doc", make([]byte, 5000)))

	s := NewRateLimited(inner, 100)
	b, err := s.Open(ctx, "doc")
	require.NoError(t, err)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = b.ReadAt(cctx, make([]byte, 500), 0)
	assert.Error(t, err)
}
