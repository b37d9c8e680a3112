package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "resume_matcher"

// Upload outcomes recorded in resume_matcher_uploads_total.
const (
	UploadStored       = "stored"
	UploadMissingFile  = "missing_file"
	UploadMalformed    = "malformed"
	UploadInvalidName  = "invalid_filename"
	UploadTooLarge     = "too_large"
	UploadStorageError = "storage_error"
	UploadTimeout      = "timeout"
)

// Metrics holds the server's Prometheus collectors on a private registry so
// several servers (e.g. in tests) can coexist in one process.
type Metrics struct {
	registry        *prometheus.Registry
	uploads         *prometheus.CounterVec
	uploadBytes     prometheus.Histogram
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the upload and HTTP collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Resume uploads by outcome.",
		}, []string{"result"}),
		uploadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_bytes",
			Help:      "Size of stored resumes in bytes.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		m.uploads,
		m.uploadBytes,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ObserveUpload(result string, size int64) {
	m.uploads.WithLabelValues(result).Inc()
	if result == UploadStored {
		m.uploadBytes.Observe(float64(size))
	}
}

func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler returns the HTTP handler for the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
