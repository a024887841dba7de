// Package metrics exposes Prometheus metrics for the HTTP API and issue workflow.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gramaconnect"

// Metrics holds every collector, registered on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	IssuesReported    *prometheus.CounterVec
	IssueTransitions  *prometheus.CounterVec
	PhotosRejected    prometheus.Counter
	ReportsThrottled  prometheus.Counter
	GeocodingRequests *prometheus.CounterVec
}

// New creates the metrics set on a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		HTTPRequestsInFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		}),
		IssuesReported: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issues_reported_total",
			Help:      "Issues reported, by category",
		}, []string{"category"}),
		IssueTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issue_transitions_total",
			Help:      "Issue status transitions, by target status",
		}, []string{"status"}),
		PhotosRejected: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "photos_rejected_total",
			Help:      "Photos rejected on upload",
		}),
		ReportsThrottled: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_throttled_total",
			Help:      "Issue reports refused by the per-user rate limit",
		}),
		GeocodingRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocoding_requests_total",
			Help:      "Geocoding lookups, by kind and outcome",
		}, []string{"kind", "outcome"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// IssueReported records a new issue.
func (m *Metrics) IssueReported(category string) {
	m.IssuesReported.WithLabelValues(category).Inc()
}

// IssueTransitioned records a status change.
func (m *Metrics) IssueTransitioned(status string) {
	m.IssueTransitions.WithLabelValues(status).Inc()
}

// PhotoRejected records n rejected photos.
func (m *Metrics) PhotoRejected(n int) {
	m.PhotosRejected.Add(float64(n))
}

// ReportThrottled records a report refused by the rate limit.
func (m *Metrics) ReportThrottled() {
	m.ReportsThrottled.Inc()
}

// GeocodingRequest records one lookup.
func (m *Metrics) GeocodingRequest(kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.GeocodingRequests.WithLabelValues(kind, outcome).Inc()
}

// Middleware records request count, latency and in-flight requests. The
// route label is the ServeMux pattern, so ids do not explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
