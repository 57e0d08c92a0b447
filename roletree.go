package roletree

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hupe1980/roletree/a11y"
	"github.com/hupe1980/roletree/blobstore"
	"github.com/hupe1980/roletree/codec"
	"github.com/hupe1980/roletree/role"
	"github.com/hupe1980/roletree/tree"
	"golang.org/x/sync/errgroup"
)

// Document is a loaded accessibility tree indexed in both summary flavors.
// A Document is read-only and safe for concurrent use.
type Document struct {
	// Name identifies the source of the document, if any.
	Name string
	// Bool summarizes subtrees with role sets.
	Bool *tree.BoolTree
	// Count summarizes subtrees with per-role counts.
	Count *tree.CountTree

	metrics MetricsCollector
	logger  *Logger
}

// New indexes an in-memory document.
func New(ctx context.Context, n *a11y.Node, optFns ...Option) *Document {
	return build(ctx, "", n, applyOptions(optFns))
}

// Load decodes a document from r and indexes it. The stream is
// decompressed only when WithCompression is given. Every node must carry
// both "role" and "children"; documents nested deeper than roughly 5000
// levels exceed the codecs' nesting limit and fail to load.
func Load(ctx context.Context, r io.Reader, optFns ...Option) (*Document, error) {
	return load(ctx, "", r, applyOptions(optFns))
}

// LoadFile loads the document stored at path. The compression follows the
// file extension unless WithCompression overrides it. Load describes the
// accepted documents.
func LoadFile(ctx context.Context, path string, optFns ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roletree: %w", err)
	}
	defer f.Close()

	return load(ctx, path, f, applyOptions(optFns))
}

// FromStore loads the blob name from s.
func FromStore(ctx context.Context, s blobstore.BlobStore, name string, optFns ...Option) (*Document, error) {
	o := applyOptions(optFns)
	return fromStore(ctx, o.store(s), name, o)
}

// LoadAll loads every named blob from s concurrently, bounded by
// WithWorkers. The first failure cancels the remaining loads.
func LoadAll(ctx context.Context, s blobstore.BlobStore, names []string, optFns ...Option) ([]*Document, error) {
	o := applyOptions(optFns)
	s = o.store(s)

	docs := make([]*Document, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, name := range names {
		g.Go(func() error {
			d, err := fromStore(gctx, s, name, o)
			if err != nil {
				return err
			}
			docs[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	o.logger.WithCount(len(docs)).InfoContext(ctx, "documents loaded")
	return docs, nil
}

// Save encodes n and stores it in s under name, compressed as the name
// implies.
func Save(ctx context.Context, s blobstore.BlobStore, name string, n a11y.Node, optFns ...Option) error {
	o := applyOptions(optFns)

	var buf bytes.Buffer
	w, err := codec.NewWriter(o.compressionFor(name), &buf)
	if err != nil {
		return fmt.Errorf("roletree: save %s: %w", name, err)
	}
	if err := a11y.Encode(w, n, o.codec); err != nil {
		_ = w.Close()
		return fmt.Errorf("roletree: save %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("roletree: save %s: %w", name, err)
	}
	return s.Put(ctx, name, buf.Bytes())
}

func fromStore(ctx context.Context, s blobstore.BlobStore, name string, o options) (*Document, error) {
	b, err := s.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("roletree: open %s: %w", name, err)
	}
	defer b.Close()

	r, err := blobstore.NewReader(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("roletree: read %s: %w", name, err)
	}
	defer r.Close()

	return load(ctx, name, r, o)
}

func load(ctx context.Context, name string, r io.Reader, o options) (*Document, error) {
	start := time.Now()
	cr := &countingReader{r: r}
	n, err := decode(cr, o.compressionFor(name), o.codec)
	o.metricsCollector.RecordLoad(cr.n, time.Since(start), err)
	o.loggerFor(name).LogLoad(ctx, cr.n, err)
	if err != nil {
		if name == "" {
			return nil, fmt.Errorf("roletree: load: %w", err)
		}
		return nil, fmt.Errorf("roletree: load %s: %w", name, err)
	}
	return build(ctx, name, &n, o), nil
}

func decode(r io.Reader, c codec.Compression, cd codec.Codec) (a11y.Node, error) {
	rc, err := codec.NewReader(c, r)
	if err != nil {
		return a11y.Node{}, err
	}
	defer rc.Close()
	return a11y.Decode(rc, cd)
}

func build(ctx context.Context, name string, n *a11y.Node, o options) *Document {
	start := time.Now()
	par := tree.ParallelOptions{Workers: o.workers}
	logger := o.loggerFor(name)

	d := &Document{
		Name:    name,
		Bool:    tree.NewBool(n),
		Count:   tree.NewCount(n),
		metrics: o.metricsCollector,
		logger:  logger,
	}
	d.Bool.SetParallelism(par)
	d.Count.SetParallelism(par)
	d.Bool.BuildIndex()
	d.Count.BuildIndex()

	elapsed := time.Since(start)
	o.metricsCollector.RecordBuild(d.Bool.Len(), elapsed)
	logger.LogBuild(ctx, d.Bool.Len(), elapsed)
	return d
}

// Len returns the number of nodes.
func (d *Document) Len() int {
	return d.Bool.Len()
}

// Stats describes the shape of the document.
func (d *Document) Stats() tree.Stats {
	defer d.observe("stats", time.Now())
	return d.Bool.Stats()
}

// RoleReport describes the occurrences of one role.
type RoleReport struct {
	Role  role.Role   `json:"role"`
	Name  string      `json:"name"`
	Count int         `json:"count"`
	First tree.Handle `json:"first"`
	// Depth is the depth of First.
	Depth int `json:"depth"`
}

// Report returns one entry per role present in the document, in ascending
// role order.
func (d *Document) Report() []RoleReport {
	defer d.observe("report", time.Now())

	roles := d.Count.UniqueRolesRoleSet()
	out := make([]RoleReport, 0, len(roles))
	for _, r := range roles {
		first, _ := d.Count.FindFirstStack(r)
		out = append(out, RoleReport{
			Role:  r,
			Name:  r.String(),
			Count: tree.Occurrences(d.Count, r),
			First: first,
			Depth: d.Count.Depth(first),
		})
	}
	return out
}

// Node converts the document back into its input model.
func (d *Document) Node() a11y.Node {
	return d.Bool.Document(d.Bool.Root())
}

func (d *Document) observe(query string, start time.Time) {
	d.metrics.RecordQuery(query, time.Since(start))
}

// countingReader counts the bytes read from r.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
