// Package metrics provides Prometheus metrics for the feed codec harness.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the harness.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Codec Metrics - Outcome of every round-trip check
	recordsChecked   *prometheus.CounterVec
	decodeErrors     *prometheus.CounterVec
	mismatches       *prometheus.CounterVec
	unhandled        *prometheus.CounterVec
	recordsDeduped   prometheus.Counter
	corpusParseError prometheus.Counter

	// Queue Metrics - Record queue performance
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueUtilization   prometheus.Gauge
	queueEnqueueRate   prometheus.Counter
	queueDequeueRate   prometheus.Counter
	queueEnqueueErrors prometheus.Counter

	// Worker Metrics - Validation performance
	workerCount       prometheus.Gauge
	workerActiveCount prometheus.Gauge
	validationLatency prometheus.Histogram
	workerErrorRate   prometheus.Counter

	// Store Metrics - Outcome persistence
	storeWriteLatency prometheus.Histogram
	storeErrors       prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "feedcodec",
		subsystem:        "harness",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) histogramOpts(name, help string) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.recordsChecked = auto.NewCounterVec(
		m.counterOpts("records_checked_total", "Total number of records checked, by type code and status"),
		[]string{"type", "status"},
	)
	m.decodeErrors = auto.NewCounterVec(
		m.counterOpts("decode_errors_total", "Total number of records that failed to decode, by type code and error kind"),
		[]string{"type", "kind"},
	)
	m.mismatches = auto.NewCounterVec(
		m.counterOpts("roundtrip_mismatches_total", "Total number of records whose re-encoding differs, by type code"),
		[]string{"type"},
	)
	m.unhandled = auto.NewCounterVec(
		m.counterOpts("unhandled_total", "Total number of records with a type code the codec does not handle"),
		[]string{"type"},
	)
	m.recordsDeduped = auto.NewCounter(
		m.counterOpts("records_deduplicated_total", "Total number of records skipped because their id was already checked"),
	)
	m.corpusParseError = auto.NewCounter(
		m.counterOpts("corpus_parse_errors_total", "Total number of corpus lines that were not valid records"),
	)

	m.queueSize = auto.NewGauge(m.gaugeOpts("queue_size", "Current number of records waiting in the queue"))
	m.queueCapacity = auto.NewGauge(m.gaugeOpts("queue_capacity", "Maximum capacity of the record queue"))
	m.queueUtilization = auto.NewGauge(m.gaugeOpts("queue_utilization_ratio", "Queue utilization ratio (0.0 to 1.0)"))
	m.queueEnqueueRate = auto.NewCounter(m.counterOpts("queue_enqueue_total", "Total number of records enqueued"))
	m.queueDequeueRate = auto.NewCounter(m.counterOpts("queue_dequeue_total", "Total number of records dequeued"))
	m.queueEnqueueErrors = auto.NewCounter(m.counterOpts("queue_enqueue_errors_total", "Total number of enqueue errors"))

	m.workerCount = auto.NewGauge(m.gaugeOpts("worker_count", "Number of validation workers"))
	m.workerActiveCount = auto.NewGauge(m.gaugeOpts("worker_active_count", "Number of workers currently checking a record"))
	m.validationLatency = auto.NewHistogram(
		m.histogramOpts("validation_latency_ms", "Time to decode, re-encode and compare one record, in milliseconds"),
	)
	m.workerErrorRate = auto.NewCounter(m.counterOpts("worker_errors_total", "Total number of worker errors"))

	m.storeWriteLatency = auto.NewHistogram(
		m.histogramOpts("store_write_latency_ms", "Time to persist one outcome, in milliseconds"),
	)
	m.storeErrors = auto.NewCounter(m.counterOpts("store_errors_total", "Total number of failed outcome writes"))
}

func typeLabel(code int64) string {
	return strconv.FormatInt(code, 10)
}

// Codec Metrics Functions.

// RecordChecked counts one checked record.
func RecordChecked(typeCode int64, status string) {
	if !globalManager.enabled {
		return
	}
	globalManager.recordsChecked.WithLabelValues(typeLabel(typeCode), status).Inc()
}

// RecordDecodeError counts a decode failure by its error kind.
func RecordDecodeError(typeCode int64, kind string) {
	if !globalManager.enabled {
		return
	}
	globalManager.decodeErrors.WithLabelValues(typeLabel(typeCode), kind).Inc()
}

// RecordMismatch counts a record whose re-encoding differs from it.
func RecordMismatch(typeCode int64) {
	if !globalManager.enabled {
		return
	}
	globalManager.mismatches.WithLabelValues(typeLabel(typeCode)).Inc()
}

// RecordUnhandled counts a record whose type code has no recipe.
func RecordUnhandled(typeCode int64) {
	if !globalManager.enabled {
		return
	}
	globalManager.unhandled.WithLabelValues(typeLabel(typeCode)).Inc()
}

// RecordDeduplicated counts a skipped duplicate record.
func RecordDeduplicated() {
	if !globalManager.enabled {
		return
	}
	globalManager.recordsDeduped.Inc()
}

// RecordCorpusParseError counts an unreadable corpus line.
func RecordCorpusParseError() {
	if !globalManager.enabled {
		return
	}
	globalManager.corpusParseError.Inc()
}

// Queue Metrics Functions.

// UpdateQueueSize sets the current queue size.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the queue capacity.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// UpdateQueueUtilization sets the queue utilization ratio.
func UpdateQueueUtilization(ratio float64) {
	globalManager.queueUtilization.Set(ratio)
}

// RecordQueueEnqueue increments the enqueue counter.
func RecordQueueEnqueue() {
	globalManager.queueEnqueueRate.Inc()
}

// RecordQueueDequeue increments the dequeue counter.
func RecordQueueDequeue() {
	globalManager.queueDequeueRate.Inc()
}

// RecordQueueEnqueueError increments the enqueue error counter.
func RecordQueueEnqueueError() {
	globalManager.queueEnqueueErrors.Inc()
}

// Worker Metrics Functions.

// UpdateWorkerCount sets the number of workers.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// UpdateWorkerActiveCount sets the number of active workers.
func UpdateWorkerActiveCount(count int) {
	globalManager.workerActiveCount.Set(float64(count))
}

// RecordValidationLatency records the time spent checking one record.
func RecordValidationLatency(latencyMs float64) {
	globalManager.validationLatency.Observe(latencyMs)
}

// RecordWorkerError increments the worker error counter.
func RecordWorkerError() {
	globalManager.workerErrorRate.Inc()
}

// Store Metrics Functions.

// RecordStoreWriteLatency records the time spent persisting one outcome.
func RecordStoreWriteLatency(latencyMs float64) {
	globalManager.storeWriteLatency.Observe(latencyMs)
}

// RecordStoreError increments the store error counter.
func RecordStoreError() {
	globalManager.storeErrors.Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
