// Command roletree loads accessibility tree documents and reports on them.
//
// Usage:
//
//	roletree [flags] stats|roles|verify|tree <document>...
//
// Documents are read from the store selected by ROLETREE_STORE (local, s3
// or minio). See Config for every setting.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/hupe1980/roletree"
	"github.com/hupe1980/roletree/a11y"
	"github.com/hupe1980/roletree/blobstore"
	"github.com/hupe1980/roletree/blobstore/minio"
	"github.com/hupe1980/roletree/blobstore/s3"
	"github.com/hupe1980/roletree/codec"
	"github.com/hupe1980/roletree/metric"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("roletree", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", ".env", "Optional dotenv file with ROLETREE_* settings")
	asJSON := fs.Bool("json", false, "Print stats and roles as JSON")
	ascii := fs.Bool("ascii", false, "Draw trees with ASCII characters")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: roletree [flags] stats|roles|verify|tree <document>...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return 2
	}
	cmd, names := fs.Arg(0), fs.Args()[1:]

	cfg, err := LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return 2
	}

	logger := newLogger(cfg, stderr)
	opts, err := loadOptions(cfg, logger)
	if err != nil {
		logger.Error("Invalid options", "error", err)
		return 2
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, roletree.WithMetricsCollector(metric.NewPrometheusCollector(reg, "roletree")))
		go func() {
			logger.Info("Starting metrics server", "address", cfg.MetricsAddr)
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Error("Failed to start metrics server", "error", err)
			}
		}()
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open store", "store", cfg.Store, "error", err)
		return 1
	}

	docs, err := roletree.LoadAll(ctx, store, names, opts...)
	if err != nil {
		logger.Error("Failed to load documents", "error", err)
		return 1
	}

	enc, _ := codec.ByName(cfg.Codec)
	switch cmd {
	case "stats":
		err = printStats(stdout, docs, enc, *asJSON)
	case "roles":
		err = printRoles(stdout, docs, enc, *asJSON)
	case "verify":
		err = verifyAll(ctx, stdout, docs)
	case "tree":
		style := a11y.SingleLine
		if *ascii {
			style = a11y.ASCII
		}
		err = printTrees(stdout, docs, style)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}
	if err != nil {
		logger.Error("Command failed", "command", cmd, "error", err)
		return 1
	}
	return 0
}

func newLogger(cfg Config, w io.Writer) *roletree.Logger {
	level, _ := cfg.Level()
	if cfg.LogFormat == "json" {
		return roletree.NewJSONLogger(w, level)
	}
	return roletree.NewTextLogger(w, level)
}

func loadOptions(cfg Config, logger *roletree.Logger) ([]roletree.Option, error) {
	c, err := codec.ByName(cfg.Codec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCodec, err)
	}
	opts := []roletree.Option{
		roletree.WithCodec(c),
		roletree.WithLogger(logger),
		roletree.WithWorkers(cfg.Workers),
		roletree.WithIOLimit(cfg.IOLimit),
	}
	if cfg.Compression != "" {
		comp, err := codec.ParseCompression(cfg.Compression)
		if err != nil {
			return nil, err
		}
		opts = append(opts, roletree.WithCompression(comp))
	}
	return opts, nil
}

func openStore(ctx context.Context, cfg Config) (blobstore.BlobStore, error) {
	switch cfg.Store {
	case "local":
		return blobstore.NewLocalStore(cfg.Root), nil
	case "s3":
		var optFns []func(*s3.Options)
		if cfg.Prefix != "" {
			optFns = append(optFns, s3.WithPrefix(cfg.Prefix))
		}
		if cfg.Region != "" {
			optFns = append(optFns, s3.WithRegion(cfg.Region))
		}
		if cfg.Endpoint != "" {
			optFns = append(optFns, s3.WithEndpoint(cfg.Endpoint))
		}
		return s3.New(ctx, cfg.Bucket, optFns...)
	case "minio":
		return minio.New(cfg.Endpoint, cfg.Bucket, minio.Options{
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Secure:    cfg.MinioSecure,
			Region:    cfg.Region,
			Prefix:    cfg.Prefix,
		})
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidStore, cfg.Store)
}

type docStats struct {
	Document    string `json:"document"`
	Nodes       int    `json:"nodes"`
	Leaves      int    `json:"leaves"`
	MaxDepth    int    `json:"max_depth"`
	UniqueRoles int    `json:"unique_roles"`
}

func printStats(w io.Writer, docs []*roletree.Document, enc codec.Codec, asJSON bool) error {
	rows := make([]docStats, len(docs))
	for i, d := range docs {
		s := d.Stats()
		rows[i] = docStats{d.Name, s.Nodes, s.Leaves, s.MaxDepth, s.UniqueRoles}
	}
	if asJSON {
		return writeJSON(w, enc, rows)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DOCUMENT\tNODES\tLEAVES\tMAX DEPTH\tROLES")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", r.Document, r.Nodes, r.Leaves, r.MaxDepth, r.UniqueRoles)
	}
	return tw.Flush()
}

func printRoles(w io.Writer, docs []*roletree.Document, enc codec.Codec, asJSON bool) error {
	if asJSON {
		out := make(map[string][]roletree.RoleReport, len(docs))
		for _, d := range docs {
			out[d.Name] = d.Report()
		}
		return writeJSON(w, enc, out)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DOCUMENT\tROLE\tCOUNT\tFIRST\tDEPTH")
	for _, d := range docs {
		for _, r := range d.Report() {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", d.Name, r.Name, r.Count, r.First, r.Depth)
		}
	}
	return tw.Flush()
}

func verifyAll(ctx context.Context, w io.Writer, docs []*roletree.Document) error {
	var errs []error
	for _, d := range docs {
		if err := d.Verify(ctx); err != nil {
			fmt.Fprintf(w, "FAIL %s: %v\n", d.Name, err)
			errs = append(errs, fmt.Errorf("%s: %w", d.Name, err))
			continue
		}
		fmt.Fprintf(w, "ok   %s\n", d.Name)
	}
	return errors.Join(errs...)
}

func printTrees(w io.Writer, docs []*roletree.Document, style a11y.Style) error {
	for i, d := range docs {
		if len(docs) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s:\n", d.Name)
		}
		n := d.Node()
		if err := n.Format(w, style); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, enc codec.Codec, v any) error {
	data, err := enc.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
