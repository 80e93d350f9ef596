package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the polling loop.
type Metrics struct {
	PollsTotal    prometheus.Counter
	FetchErrors   prometheus.Counter
	AlertsTotal   *prometheus.CounterVec // labels: kind
	LastRSI       prometheus.Gauge
	FetchDuration prometheus.Histogram

	registry *prometheus.Registry
}

// New registers and returns all metrics on a private registry, so tests
// can build several instances without collisions.
func New() *Metrics {
	m := &Metrics{
		PollsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rsisentinel_polls_total",
			Help: "Total poll cycles executed",
		}),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rsisentinel_fetch_errors_total",
			Help: "Poll cycles that failed to fetch or evaluate",
		}),
		AlertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rsisentinel_alerts_total",
			Help: "Alerts emitted (by signal kind)",
		}, []string{"kind"}),
		LastRSI: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rsisentinel_last_rsi",
			Help: "Most recently computed RSI value",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rsisentinel_fetch_duration_seconds",
			Help:    "Kline fetch plus RSI evaluation latency",
			Buckets: prometheus.DefBuckets,
		}),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(m.PollsTotal, m.FetchErrors, m.AlertsTotal, m.LastRSI, m.FetchDuration)
	return m
}

// ObserveFetch records one fetch latency sample.
func (m *Metrics) ObserveFetch(d time.Duration) {
	m.FetchDuration.Observe(d.Seconds())
}

// Serve exposes /metrics on addr. Blocks; run in a goroutine.
func (m *Metrics) Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	log.Printf("[INFO] metrics listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("[ERROR] metrics server: %v", err)
	}
}
