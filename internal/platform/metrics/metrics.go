package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors del servicio sobre un registry propio
// (no el global, para que los tests puedan crear varios).
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests         *prometheus.CounterVec
	HTTPDuration         *prometheus.HistogramVec
	DescriptionUnmatched prometheus.Counter
	PhotoUploads         *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shelter",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "shelter",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		DescriptionUnmatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shelter",
			Name:      "description_unmatched_lines_total",
			Help:      "Description lines folded into the story because they matched no rule.",
		}),
		PhotoUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shelter",
			Name:      "photo_uploads_total",
			Help:      "Photo uploads by result (ok|error).",
		}, []string{"result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.DescriptionUnmatched,
		m.PhotoUploads,
	)
	return m
}

// Handler expone /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// PhotoUploaded registra el resultado de una subida. Nil-safe.
func (m *Metrics) PhotoUploaded(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.PhotoUploads.WithLabelValues("ok").Inc()
		return
	}
	m.PhotoUploads.WithLabelValues("error").Inc()
}

// UnmatchedLines suma líneas de prosa no reconocidas. Nil-safe.
func (m *Metrics) UnmatchedLines(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.DescriptionUnmatched.Add(float64(n))
}
