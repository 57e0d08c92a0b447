package metric

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hupe1980/roletree"
	"github.com/hupe1980/roletree/testutil"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheusCollector(reg, "roletree")

	c.RecordLoad(100, time.Millisecond, nil)
	c.RecordLoad(10, time.Millisecond, errors.New("boom"))
	c.RecordBuild(13, time.Millisecond)
	c.RecordQuery("report", time.Microsecond)
	c.RecordQuery("verify", time.Microsecond)

	assert.Equal(t, float64(1), promtest.ToFloat64(c.loadsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(1), promtest.ToFloat64(c.loadsTotal.WithLabelValues("error")))
	assert.Equal(t, float64(110), promtest.ToFloat64(c.loadBytesTotal))
	assert.Equal(t, float64(1), promtest.ToFloat64(c.documentsIndexed))
	assert.Equal(t, 2, promtest.CollectAndCount(c.queryDuration))

	n, err := promtest.GatherAndCount(reg, "roletree_loads_total", "roletree_build_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPrometheusCollector_WithDocument(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheusCollector(reg, "roletree")

	doc, err := roletree.Load(context.Background(), bytes.NewReader(testutil.PageJSON()), roletree.WithMetricsCollector(c))
	require.NoError(t, err)
	require.NoError(t, doc.Verify(context.Background()))

	assert.Equal(t, float64(1), promtest.ToFloat64(c.loadsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(len(testutil.PageJSON())), promtest.ToFloat64(c.loadBytesTotal))
	assert.Equal(t, float64(1), promtest.ToFloat64(c.documentsIndexed))
	assert.Equal(t, 1, promtest.CollectAndCount(c.queryDuration))
}
