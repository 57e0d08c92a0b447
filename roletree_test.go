package roletree

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/roletree/a11y"
	"github.com/hupe1980/roletree/blobstore"
	"github.com/hupe1980/roletree/codec"
	"github.com/hupe1980/roletree/role"
	"github.com/hupe1980/roletree/testutil"
	"github.com/hupe1980/roletree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(t *testing.T) a11y.Node {
	t.Helper()
	n, err := testutil.Page()
	require.NoError(t, err)
	return n
}

func TestLoad(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	doc, err := Load(context.Background(), bytes.NewReader(testutil.PageJSON()),
		WithCodec(codec.JSON{}),
		WithMetricsCollector(metrics),
	)
	require.NoError(t, err)

	assert.Equal(t, 13, doc.Len())
	assert.True(t, doc.Bool.Indexed())
	assert.True(t, doc.Count.Indexed())
	assert.Equal(t, tree.Stats{Nodes: 13, Leaves: 7, MaxDepth: 4, UniqueRoles: 9}, doc.Stats())

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.LoadCount)
	assert.Equal(t, int64(0), stats.LoadErrors)
	assert.Equal(t, int64(len(testutil.PageJSON())), stats.LoadBytes)
	assert.Equal(t, int64(1), stats.BuildCount)
	assert.Equal(t, int64(13), stats.BuildNodes)
	assert.Equal(t, int64(1), stats.QueryCount)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyDocument},
		{"null", "null", ErrEmptyDocument},
		{"unknown name", `{"role": "spaceship"}`, ErrUnknownRole},
		{"code out of range", `{"role": 130}`, ErrUnknownRole},
		{"no children list", `{"role": 39}`, ErrMalformedDocument},
		{"null child", `{"role": 39, "children": [null]}`, ErrMalformedDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := &BasicMetricsCollector{}
			_, err := Load(context.Background(), bytes.NewBufferString(tt.input), WithCodec(codec.JSON{}), WithMetricsCollector(metrics))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, int64(1), metrics.GetStats().LoadErrors)
			assert.Equal(t, int64(0), metrics.GetStats().BuildCount)
		})
	}
}

func TestSaveAndFromStore(t *testing.T) {
	ctx := context.Background()
	n := page(t)
	want := New(ctx, &n).Node()

	for _, name := range []string{"page.json", "page.json.zst", "page.json.lz4"} {
		t.Run(name, func(t *testing.T) {
			store := blobstore.NewMemoryStore()
			require.NoError(t, Save(ctx, store, name, n))

			doc, err := FromStore(ctx, store, name)
			require.NoError(t, err)
			assert.Equal(t, name, doc.Name)
			assert.Equal(t, want, doc.Node())
		})
	}
}

func TestFromStore_ForcedCompression(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, Save(ctx, store, "page.bin", page(t), WithCompression(codec.Zstd)))

	// The name carries no extension, so the stream is only readable when
	// the compression is given explicitly.
	_, err := FromStore(ctx, store, "page.bin")
	require.Error(t, err)

	doc, err := FromStore(ctx, store, "page.bin", WithCompression(codec.Zstd))
	require.NoError(t, err)
	assert.Equal(t, 13, doc.Len())
}

func TestFromStore_NotFound(t *testing.T) {
	_, err := FromStore(context.Background(), blobstore.NewMemoryStore(), "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFromStore_IOLimit(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "page.json", testutil.PageJSON()))

	doc, err := FromStore(ctx, store, "page.json", WithIOLimit(1<<20))
	require.NoError(t, err)
	assert.Equal(t, 13, doc.Len())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.json.lz4")

	var buf bytes.Buffer
	w, err := codec.NewWriter(codec.LZ4, &buf)
	require.NoError(t, err)
	_, err = w.Write(testutil.PageJSON())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	doc, err := LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 13, doc.Len())
	assert.Equal(t, path, doc.Name)

	_, err = LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadAll(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	rng := testutil.NewRNG(7)

	var names []string
	var sizes []int
	for i := range 6 {
		name := fmt.Sprintf("docs/%d.json.zst", i)
		n := rng.Document(testutil.DocumentOptions{Nodes: 100 * (i + 1), Skew: 1.2})
		require.NoError(t, Save(ctx, store, name, n))
		names = append(names, name)
		sizes = append(sizes, 100*(i+1))
	}

	docs, err := LoadAll(ctx, store, names, WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, docs, len(names))
	for i, d := range docs {
		assert.Equal(t, names[i], d.Name)
		assert.Equal(t, sizes[i], d.Len())
	}

	_, err = LoadAll(ctx, store, append(names, "docs/missing.json"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReport(t *testing.T) {
	n := page(t)
	doc := New(context.Background(), &n)

	report := doc.Report()
	require.Len(t, report, 9)

	byRole := make(map[role.Role]RoleReport, len(report))
	for i, r := range report {
		if i > 0 {
			assert.Less(t, report[i-1].Role, r.Role)
		}
		byRole[r.Role] = r
	}

	assert.Equal(t, RoleReport{Role: role.Link, Name: "link", Count: 2, First: 4, Depth: 3}, byRole[role.Link])
	assert.Equal(t, RoleReport{Role: role.PushButton, Name: "push button", Count: 1, First: 11, Depth: 2}, byRole[role.PushButton])
	assert.Equal(t, RoleReport{Role: role.Frame, Name: "frame", Count: 1, First: 0, Depth: 0}, byRole[role.Frame])
	assert.Equal(t, 2, byRole[role.Heading].Count)
	assert.Equal(t, tree.Handle(2), byRole[role.Heading].First)
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	docs := map[string]a11y.Node{
		"sample": testutil.Sample(),
		"page":   page(t),
		"large":  testutil.Large(),
		"chain":  testutil.Chain(3000, role.Panel, role.Label),
		"random": testutil.NewRNG(99).Document(testutil.DocumentOptions{Nodes: 5000, Skew: 1.0, Deep: 0.5}),
	}

	for name, n := range docs {
		t.Run(name, func(t *testing.T) {
			doc := New(ctx, &n, WithWorkers(4))
			assert.NoError(t, doc.Verify(ctx))
		})
	}
}

func TestVerify_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := testutil.Sample()
	err := New(context.Background(), &n).Verify(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMismatchError(t *testing.T) {
	var err error = &MismatchError{
		Flavor: "bool",
		Query:  "ParHowMany",
		Role:   role.Link,
		Want:   "2",
		Got:    "3",
	}
	assert.ErrorIs(t, err, ErrMismatch)
	assert.Equal(t, "bool tree: ParHowMany(link): want 2, got 3", err.Error())

	wrapped := fmt.Errorf("verify: %w", err)
	var me *MismatchError
	require.True(t, errors.As(wrapped, &me))
	assert.Equal(t, role.Link, me.Role)
}
