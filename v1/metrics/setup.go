package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and the HTTP server that
// exposes it. Each service keeps its own isolated registry to prevent metric
// name collisions when multiple services run in one process.
type Metrics struct {
	// Server is the HTTP server exposing the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	Registry *prometheus.Registry

	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	connectionUp  *prometheus.GaugeVec
}

// NewMetrics initializes a Metrics instance: a dedicated registry, the
// database collectors, optionally the standard Go/process collectors, and an
// HTTP server for scraping. All metrics carry a constant service label.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
		queriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dbkit_queries_total",
			Help: "Total number of executed database statements",
		}, []string{"operation", "status"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dbkit_query_duration_seconds",
			Help:    "Duration of database statements in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		connectionUp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "dbkit_connection_up",
			Help: "Whether the database connection is established (1) or not (0)",
		}, []string{"engine"}),
	}

	wrapped.MustRegister(
		m.queriesTotal,
		m.queryDuration,
		m.connectionUp,
	)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	return m
}

// SetConnectionUp flips the connection gauge for the given engine.
func (m *Metrics) SetConnectionUp(engine string, up bool) {
	v := 0.0
	if up {
		v = 1.0
	}
	m.connectionUp.WithLabelValues(engine).Set(v)
}

// recordQuery updates the statement counter and latency histogram. Called
// from the GORM callbacks registered by InstrumentGorm.
func (m *Metrics) recordQuery(operation string, seconds float64, failed bool) {
	status := "ok"
	if failed {
		status = "error"
	}
	m.queriesTotal.WithLabelValues(operation, status).Inc()
	m.queryDuration.WithLabelValues(operation).Observe(seconds)
}
