package telemetry

import (
	"net/http"
	"strconv"
	"time"

	appchat "github.com/dicky/portfolio/internal/application/chat"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric namespace shared by every collector.
const Namespace = "portfolio"

// Metrics owns a private Prometheus registry with the HTTP and chat relay
// collectors.
//
// Thread Safety: Safe for concurrent use by multiple goroutines.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	relays       *prometheus.CounterVec
	relayChunks  *prometheus.CounterVec
	relayElapsed *prometheus.HistogramVec
}

var _ appchat.Recorder = (*Metrics)(nil)

// NewMetrics creates and registers all collectors. Process and Go runtime
// collectors are included when withRuntime is true.
func NewMetrics(withRuntime bool) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)
	m.httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	m.relays = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "chat",
			Name:      "relays_total",
			Help:      "Chat relays by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)
	m.relayChunks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "chat",
			Name:      "chunks_total",
			Help:      "Non-empty text chunks forwarded to clients.",
		},
		[]string{"provider"},
	)
	m.relayElapsed = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "chat",
			Name:      "relay_duration_seconds",
			Help:      "Time from provider request to end of stream.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 80},
		},
		[]string{"provider", "outcome"},
	)

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.relays,
		m.relayChunks,
		m.relayElapsed,
	)
	if withRuntime {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// ObserveRequest records one finished HTTP request. route is the matched
// route template, not the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RelayFinished implements appchat.Recorder.
func (m *Metrics) RelayFinished(provider string, outcome appchat.Outcome, chunks int, elapsed time.Duration) {
	if provider == "" {
		provider = "none"
	}
	m.relays.WithLabelValues(provider, string(outcome)).Inc()
	if chunks > 0 {
		m.relayChunks.WithLabelValues(provider).Add(float64(chunks))
	}
	m.relayElapsed.WithLabelValues(provider, string(outcome)).Observe(elapsed.Seconds())
}
