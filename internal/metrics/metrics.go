package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	Records = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ukkm_records",
			Help: "Records currently held per collection",
		},
		[]string{"kind"},
	)

	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ukkm_mutations_total",
			Help: "Store mutations by record kind and action",
		},
		[]string{"kind", "action"},
	)

	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ukkm_reports_generated_total",
			Help: "Inspection reports rendered by format",
		},
		[]string{"format"},
	)

	ArchiveUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ukkm_archive_uploads_total",
			Help: "Report archive uploads by result",
		},
		[]string{"result"},
	)
)

// RecordCounts sets the per-collection gauges
func RecordCounts(counts map[string]int) {
	for kind, n := range counts {
		Records.WithLabelValues(kind).Set(float64(n))
	}
}
