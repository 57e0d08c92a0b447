package roletree

import (
	"runtime"

	"github.com/hupe1980/roletree/blobstore"
	"github.com/hupe1980/roletree/codec"
)

type options struct {
	codec            codec.Codec
	compression      codec.Compression
	compressionSet   bool
	metricsCollector MetricsCollector
	logger           *Logger
	workers          int
	ioLimit          int64
}

// Option configures loading, building and saving documents.
type Option func(*options)

// WithCodec configures the codec used to decode and encode documents.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression forces the stream compression of documents. Without it
// the compression is derived from the document name (".zst", ".lz4").
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.compression = c
		o.compressionSet = true
	}
}

// WithWorkers bounds the goroutines used by parallel queries and by
// LoadAll. Zero or less means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithIOLimit throttles blob store reads to bytesPerSec. Zero disables the
// limit.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.ioLimit = bytesPerSec
	}
}

// WithMetricsCollector configures a metrics collector for load, build and
// query timings. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &roletree.BasicMetricsCollector{}
//	doc, _ := roletree.LoadFile(ctx, "page.json", roletree.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Loads: %d, Avg build: %dns\n", stats.LoadCount, stats.BuildAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// compressionFor returns the forced compression or the one implied by name.
func (o options) compressionFor(name string) codec.Compression {
	if o.compressionSet {
		return o.compression
	}
	return codec.CompressionFor(name)
}

// loggerFor tags the logger with the document name, if there is one.
func (o options) loggerFor(name string) *Logger {
	if name == "" {
		return o.logger
	}
	return o.logger.WithName(name)
}

// store applies the IO limit to s.
func (o options) store(s blobstore.BlobStore) blobstore.BlobStore {
	if o.ioLimit <= 0 {
		return s
	}
	return blobstore.NewRateLimited(s, o.ioLimit)
}
