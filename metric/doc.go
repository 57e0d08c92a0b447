// Package metric exports roletree load, build and query timings to
// Prometheus.
//
//	reg := prometheus.NewRegistry()
//	collector := metric.NewPrometheusCollector(reg, "roletree")
//	doc, err := roletree.LoadFile(ctx, "page.json", roletree.WithMetricsCollector(collector))
package metric
