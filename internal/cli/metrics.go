package cli

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/clustermap/pkg/observability"
)

// promHooks records pipeline and cache events in a Prometheus registry.
// The CLI flushes the registry to a node-exporter textfile after each run.
type promHooks struct {
	registry *prometheus.Registry

	layoutsTotal   *prometheus.CounterVec
	layoutDuration prometheus.Histogram
	stageDuration  *prometheus.HistogramVec
	clusters       prometheus.Gauge
	superClusters  prometheus.Gauge
	connectors     prometheus.Gauge
	inputItems     prometheus.Gauge
	cacheOps       *prometheus.CounterVec
	cacheBytes     prometheus.Counter
}

func newPromHooks() *promHooks {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &promHooks{
		registry: reg,
		layoutsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "clustermap_layouts_total",
			Help: "Layouts computed, by status",
		}, []string{"status"}),
		layoutDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "clustermap_layout_duration_seconds",
			Help:    "Time spent computing a layout",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		}),
		stageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clustermap_stage_duration_seconds",
			Help:    "Time spent per pipeline stage",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}, []string{"stage"}),
		clusters: f.NewGauge(prometheus.GaugeOpts{
			Name: "clustermap_clusters",
			Help: "Clusters in the last layout",
		}),
		superClusters: f.NewGauge(prometheus.GaugeOpts{
			Name: "clustermap_super_clusters",
			Help: "Super-clusters in the last layout",
		}),
		connectors: f.NewGauge(prometheus.GaugeOpts{
			Name: "clustermap_connectors",
			Help: "Connectors in the last layout",
		}),
		inputItems: f.NewGauge(prometheus.GaugeOpts{
			Name: "clustermap_input_items",
			Help: "Items in the last input document",
		}),
		cacheOps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "clustermap_cache_operations_total",
			Help: "Cache lookups and writes, by key type and result",
		}, []string{"key_type", "result"}),
		cacheBytes: f.NewCounter(prometheus.CounterOpts{
			Name: "clustermap_cache_written_bytes_total",
			Help: "Bytes written to the cache",
		}),
	}
}

func (h *promHooks) OnLayoutStart(_ context.Context, items, _ int) {
	h.inputItems.Set(float64(items))
}

func (h *promHooks) OnStageComplete(_ context.Context, stage observability.Stage, d time.Duration) {
	h.stageDuration.WithLabelValues(string(stage)).Observe(d.Seconds())
}

func (h *promHooks) OnLayoutComplete(_ context.Context, stats observability.LayoutStats, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	h.layoutsTotal.WithLabelValues(status).Inc()
	h.layoutDuration.Observe(d.Seconds())
	h.clusters.Set(float64(stats.Clusters))
	h.superClusters.Set(float64(stats.SuperClusters))
	h.connectors.Set(float64(stats.Connectors))
}

func (h *promHooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (h *promHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (h *promHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.cacheOps.WithLabelValues(keyType, "set").Inc()
	h.cacheBytes.Add(float64(size))
}

// install registers h as the global pipeline and cache hooks.
func (h *promHooks) install() {
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}

// writeTextfile writes the registry in the text exposition format.
func (h *promHooks) writeTextfile(path string) error {
	return prometheus.WriteToTextfile(path, h.registry)
}
