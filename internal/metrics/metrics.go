package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ebook_thumbnailer_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ebook_thumbnailer_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ebook_thumbnailer_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Extraction metrics
var (
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ebook_thumbnailer_extractions_total",
			Help: "Total number of cover extraction attempts",
		},
		[]string{"format", "status"},
	)

	ExtractionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ebook_thumbnailer_extraction_duration_seconds",
			Help:    "Cover extraction duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"format"},
	)
)

// Thumbnail cache metrics
var (
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ebook_thumbnailer_cache_hits_total",
			Help: "Total number of thumbnail cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ebook_thumbnailer_cache_misses_total",
			Help: "Total number of thumbnail cache misses",
		},
	)

	CacheWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ebook_thumbnailer_cache_write_failures_total",
			Help: "Total number of failed thumbnail cache writes (non-fatal)",
		},
	)

	CacheSizeBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ebook_thumbnailer_cache_size_bytes",
			Help: "Total size of the thumbnail cache in bytes",
		},
	)

	CacheEntryCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ebook_thumbnailer_cache_entries",
			Help: "Number of thumbnails in the cache",
		},
	)
)

// Compositing metrics
var (
	ThumbnailBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ebook_thumbnailer_builds_total",
			Help: "Total number of thumbnail composite builds",
		},
		[]string{"status"},
	)

	ThumbnailBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ebook_thumbnailer_build_duration_seconds",
			Help:    "Thumbnail composite build duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ebook_thumbnailer_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
