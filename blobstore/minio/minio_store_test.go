package minio

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/hupe1980/roletree/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	s := &Store{prefix: "pages/"}
	assert.Equal(t, "pages/home.json", s.key("home.json"))
	assert.Equal(t, "pages", s.key(""))

	assert.Equal(t, "home.json", relative("pages/", "pages/home.json"))
	assert.Equal(t, "a/b.json", relative("pages", "pages/a/b.json"))
	assert.Equal(t, "", relative("pages", "pages"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NotFound"}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("boom")))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", contentType("a/home.json"))
	assert.Equal(t, "application/zstd", contentType("home.json.zst"))
	assert.Equal(t, "application/octet-stream", contentType("home.json.lz4"))
}

// TestMinioStore_Integration requires a running MinIO instance reachable
// at MINIO_ENDPOINT.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set")
	}
	bucket := "test-roletree"

	store, err := New(endpoint, bucket, Options{
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Prefix:    "test-prefix/",
	})
	require.NoError(t, err)

	ctx := context.Background()
	if _, err := store.client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := store.client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, store.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	data := []byte(`{"role": 69, "children": [{"role": 29}]}`)
	require.NoError(t, store.Put(ctx, "page.json", data))

	blob, err := store.Open(ctx, "page.json")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 10)
	n, err := blob.ReadAt(ctx, buf, 1)
	require.NoError(t, err)
	assert.Equal(t, `"role": 69`, string(buf[:n]))

	rc, err := blob.ReadRange(ctx, 0, blob.Size())
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, data, got)
	require.NoError(t, blob.Close())

	all, err := blobstore.ReadAll(ctx, store, "page.json")
	require.NoError(t, err)
	assert.Equal(t, data, all)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "page.json")

	require.NoError(t, store.Delete(ctx, "page.json"))
	require.NoError(t, store.Delete(ctx, "page.json"))

	_, err = store.Open(ctx, "page.json")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
