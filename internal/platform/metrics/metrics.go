// Package metrics exposes prometheus instrumentation for the analytics
// refresh fan-out
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	refreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "themewatch_slice_refresh_total",
		Help: "Refresh outcomes per analytic slice",
	}, []string{"slice", "outcome"})

	upstreamSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "themewatch_upstream_seconds",
		Help:    "Upstream analytics fetch latency per slice",
		Buckets: prometheus.DefBuckets,
	}, []string{"slice"})
)

// ObserveRefresh records one slice fetch outcome and its latency
func ObserveRefresh(slice string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	refreshTotal.WithLabelValues(slice, outcome).Inc()
	upstreamSeconds.WithLabelValues(slice).Observe(elapsed.Seconds())
}

// Handler serves the prometheus scrape endpoint
func Handler() http.Handler { return promhttp.Handler() }
