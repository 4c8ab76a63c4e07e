// Package metrics provides Prometheus metrics for the versus service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core fetch pipeline metrics
	pagesFetched  prometheus.Counter
	sourceErrors  prometheus.Counter
	gamesAdmitted prometheus.Counter
	gamesSkipped  prometheus.Counter
	fetchDuration prometheus.Histogram

	// Report metrics
	reportsComputed prometheus.Counter
	fetchOutcomes   *prometheus.CounterVec
	lastFetchGames  prometheus.Gauge

	// Roster metrics
	rosterSize prometheus.Gauge

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "versus",
		subsystem:        "h2h",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.pagesFetched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "source_pages_fetched_total",
		Help:      "Total number of pages requested from the game source",
	})

	m.sourceErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "source_errors_total",
		Help:      "Total number of failed game source page requests",
	})

	m.gamesAdmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_admitted_total",
		Help:      "Total number of games admitted to qualifying sets",
	})

	m.gamesSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_skipped_total",
		Help:      "Total number of games skipped for malformed scores",
	})

	m.fetchDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_duration_milliseconds",
		Help:      "Histogram of end-to-end qualifying-set fetch duration",
		Buckets:   m.histogramBuckets,
	})

	m.reportsComputed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_computed_total",
		Help:      "Total number of head-to-head reports computed",
	})

	m.fetchOutcomes = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fetch_outcomes_total",
			Help:      "Fetch terminations by outcome tag",
		},
		[]string{"outcome"},
	)

	m.lastFetchGames = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_fetch_games",
		Help:      "Number of qualifying games found by the most recent fetch",
	})

	m.rosterSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Number of competitors in the static roster",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// Package-level helpers record on the global manager.

// RecordPageFetched increments the fetched-pages counter.
func RecordPageFetched() {
	globalManager.pagesFetched.Inc()
}

// RecordSourceError increments the source-error counter.
func RecordSourceError() {
	globalManager.sourceErrors.Inc()
}

// RecordGamesAdmitted adds to the admitted-games counter.
func RecordGamesAdmitted(n int) {
	globalManager.gamesAdmitted.Add(float64(n))
}

// RecordGamesSkipped adds to the skipped-games counter.
func RecordGamesSkipped(n int) {
	globalManager.gamesSkipped.Add(float64(n))
}

// RecordFetchDuration observes one fetch duration in milliseconds.
func RecordFetchDuration(latencyMs float64) {
	globalManager.fetchDuration.Observe(latencyMs)
}

// RecordReportComputed increments the computed-reports counter.
func RecordReportComputed() {
	globalManager.reportsComputed.Inc()
}

// RecordFetchOutcome counts a fetch termination by its outcome tag.
func RecordFetchOutcome(outcome string) {
	globalManager.fetchOutcomes.WithLabelValues(outcome).Inc()
}

// UpdateLastFetchGames sets the most recent qualifying-set size.
func UpdateLastFetchGames(n int) {
	globalManager.lastFetchGames.Set(float64(n))
}

// UpdateRosterSize sets the roster size gauge.
func UpdateRosterSize(n int) {
	globalManager.rosterSize.Set(float64(n))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
