// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acexspf_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "acexspf_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "acexspf_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Extraction metrics
var (
	ScrapesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acexspf_scrapes_total",
			Help: "Total number of source page extractions by outcome",
		},
		[]string{"outcome"},
	)

	ScrapeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "acexspf_scrape_duration_seconds",
			Help:    "Time spent fetching and parsing a source page",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		},
	)

	LinksExtracted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "acexspf_links_extracted_total",
			Help: "Total number of channel links extracted",
		},
	)

	EntriesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "acexspf_entries_skipped_total",
			Help: "Total number of source entries dropped for lacking an acestream ID",
		},
	)
)

// Playlist metrics
var (
	PlaylistsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acexspf_playlists_generated_total",
			Help: "Total number of playlist documents generated by format",
		},
		[]string{"format"},
	)

	PlaylistTracks = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "acexspf_playlist_tracks",
			Help:    "Number of tracks per generated playlist",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

// InitializeMetrics pre-populates label combinations so every series is
// exported from the first scrape.
func InitializeMetrics() {
	for _, outcome := range []string{"success", "fetch_error", "not_found", "parse_error", "error"} {
		ScrapesTotal.WithLabelValues(outcome)
	}
	for _, format := range []string{"xspf", "m3u"} {
		PlaylistsGenerated.WithLabelValues(format)
	}
}
