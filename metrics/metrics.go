// Package metrics exposes a window.History to Prometheus. Serve the
// registry with promhttp to scrape it.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/buoyantio/circular_array/window"
)

// HistoryCollector implements prometheus.Collector over a History.
// The History itself is single-threaded, so all access goes through
// one mutex here; record samples via Record rather than touching the
// History directly while the collector is registered.
type HistoryCollector struct {
	mu      sync.Mutex
	history *window.History

	pushes *prometheus.Desc
	live   *prometheus.Desc
	last   *prometheus.Desc
	mean   *prometheus.Desc
	p99    *prometheus.Desc
}

// NewHistoryCollector returns a collector for the given history,
// with metric names prefixed by namespace.
func NewHistoryCollector(namespace string, history *window.History) *HistoryCollector {
	return &HistoryCollector{
		history: history,
		pushes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "history", "pushes_total"),
			"Cumulative number of samples recorded.",
			nil, nil,
		),
		live: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "history", "live"),
			"Number of samples currently in the window.",
			nil, nil,
		),
		last: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "history", "last"),
			"Most recently recorded sample.",
			nil, nil,
		),
		mean: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "history", "mean"),
			"Mean of the windowed samples.",
			nil, nil,
		),
		p99: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "history", "p99"),
			"99th percentile of the windowed samples.",
			nil, nil,
		),
	}
}

// Record adds a sample to the underlying history.
func (hc *HistoryCollector) Record(v int64) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.history.Record(v)
}

// Describe implements prometheus.Collector.
func (hc *HistoryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- hc.pushes
	ch <- hc.live
	ch <- hc.last
	ch <- hc.mean
	ch <- hc.p99
}

// Collect implements prometheus.Collector.
func (hc *HistoryCollector) Collect(ch chan<- prometheus.Metric) {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	// Last reports zero while the window is empty.
	last, _ := hc.history.Last()
	summary := hc.history.Summary()

	ch <- prometheus.MustNewConstMetric(hc.pushes, prometheus.CounterValue, float64(hc.history.Len()))
	ch <- prometheus.MustNewConstMetric(hc.live, prometheus.GaugeValue, float64(hc.history.Live()))
	ch <- prometheus.MustNewConstMetric(hc.last, prometheus.GaugeValue, float64(last))
	ch <- prometheus.MustNewConstMetric(hc.mean, prometheus.GaugeValue, float64(summary.Mean))
	ch <- prometheus.MustNewConstMetric(hc.p99, prometheus.GaugeValue, float64(summary.P99))
}
