// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the discovery engine:
// - API endpoint latency and throughput
// - Browse cache efficiency
// - Upstream source fetch outcomes and snapshot size
// - Saved-filter and favorites store operations

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Browse Cache Metrics
	BrowseCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "browse_cache_hits_total",
			Help: "Total number of browse result cache hits",
		},
	)

	BrowseCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "browse_cache_misses_total",
			Help: "Total number of browse result cache misses",
		},
	)

	BrowseCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "browse_cache_entries",
			Help: "Current number of cached browse results",
		},
	)

	// Source Fetch Metrics
	SourceFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_fetches_total",
			Help: "Total number of upstream event source fetches",
		},
		[]string{"outcome"}, // "success", "fallback"
	)

	SourceFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "source_fetch_duration_seconds",
			Help:    "Duration of upstream event source fetches",
			Buckets: prometheus.DefBuckets,
		},
	)

	SourceSnapshotEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "source_snapshot_events",
			Help: "Number of events in the current snapshot",
		},
	)

	SourceSnapshotGeneration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "source_snapshot_generation",
			Help: "Generation number of the current snapshot",
		},
	)

	SourceSnapshotDegraded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "source_snapshot_degraded",
			Help: "Whether the current snapshot is the fallback collection (0=live, 1=degraded)",
		},
	)

	// Store Metrics
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of persistence operations",
		},
		[]string{"collection", "operation"}, // collection: "filter_presets", "favorites"
	)

	StoreCorruptBlobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_corrupt_blobs_total",
			Help: "Total number of persisted blobs discarded as unreadable",
		},
		[]string{"collection"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordBrowseCache records a browse cache lookup outcome
func RecordBrowseCache(hit bool) {
	if hit {
		BrowseCacheHits.Inc()
	} else {
		BrowseCacheMisses.Inc()
	}
}

// RecordSourceFetch records a source fetch outcome and the resulting
// snapshot shape
func RecordSourceFetch(duration time.Duration, eventCount int, generation uint64, degraded bool) {
	SourceFetchDuration.Observe(duration.Seconds())
	outcome := "success"
	degradedVal := 0.0
	if degraded {
		outcome = "fallback"
		degradedVal = 1
	}
	SourceFetchesTotal.WithLabelValues(outcome).Inc()
	SourceSnapshotEvents.Set(float64(eventCount))
	SourceSnapshotGeneration.Set(float64(generation))
	SourceSnapshotDegraded.Set(degradedVal)
}

// RecordStoreOperation records a persistence operation
func RecordStoreOperation(collection, operation string) {
	StoreOperationsTotal.WithLabelValues(collection, operation).Inc()
}

// RecordCorruptBlob records a persisted blob that could not be decoded
func RecordCorruptBlob(collection string) {
	StoreCorruptBlobs.WithLabelValues(collection).Inc()
}

// UpdateCircuitBreakerState updates the breaker state gauge by name
func UpdateCircuitBreakerState(name, state string) {
	var v float64
	switch state {
	case "half-open":
		v = 1
	case "open":
		v = 2
	}
	CircuitBreakerState.WithLabelValues(name).Set(v)
}
