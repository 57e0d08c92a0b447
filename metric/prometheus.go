package metric

import (
	"time"

	"github.com/hupe1980/roletree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusCollector implements roletree.MetricsCollector with Prometheus
// counters and histograms.
type PrometheusCollector struct {
	loadsTotal       *prometheus.CounterVec
	loadBytesTotal   prometheus.Counter
	loadDuration     prometheus.Histogram
	buildNodes       prometheus.Histogram
	buildDuration    prometheus.Histogram
	queryDuration    *prometheus.HistogramVec
	documentsIndexed prometheus.Counter
}

var _ roletree.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector registers its metrics with reg under namespace.
// A nil reg registers with the default registry.
func NewPrometheusCollector(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &PrometheusCollector{
		loadsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Total number of document loads by status",
		}, []string{"status"}),
		loadBytesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_bytes_total",
			Help:      "Total number of stored document bytes read",
		}),
		loadDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Time spent reading and decoding documents",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		buildNodes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_nodes",
			Help:      "Number of nodes per indexed document",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
		}),
		buildDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Time spent building and indexing both tree flavors",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		queryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Latency of document level queries",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"query"}),
		documentsIndexed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_indexed_total",
			Help:      "Total number of documents indexed",
		}),
	}
}

// RecordLoad implements roletree.MetricsCollector.
func (p *PrometheusCollector) RecordLoad(bytes int64, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	p.loadsTotal.WithLabelValues(status).Inc()
	p.loadBytesTotal.Add(float64(bytes))
	p.loadDuration.Observe(duration.Seconds())
}

// RecordBuild implements roletree.MetricsCollector.
func (p *PrometheusCollector) RecordBuild(nodes int, duration time.Duration) {
	p.buildNodes.Observe(float64(nodes))
	p.buildDuration.Observe(duration.Seconds())
	p.documentsIndexed.Inc()
}

// RecordQuery implements roletree.MetricsCollector.
func (p *PrometheusCollector) RecordQuery(query string, duration time.Duration) {
	p.queryDuration.WithLabelValues(query).Observe(duration.Seconds())
}
