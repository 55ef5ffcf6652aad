// Package metrics provides Prometheus metrics for the huddle momentum engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Event intake
	eventsProcessed prometheus.Counter
	eventsDuplicate prometheus.Counter
	eventsDropped   prometheus.Counter
	eventImpact     prometheus.Histogram

	// Momentum state
	momentumValue *prometheus.GaugeVec
	momentumLevel *prometheus.GaugeVec

	// Effects
	activeEffects  prometheus.Gauge
	effectsSpawned prometheus.Counter

	// Composure
	composureActivations prometheus.Counter
	composureRejected    prometheus.Counter

	// Crowd
	crowdNoise      prometheus.Gauge
	crowdEnthusiasm prometheus.Gauge

	// Event feed
	feedSize          prometheus.Gauge
	feedCapacity      prometheus.Gauge
	feedUtilization   prometheus.Gauge
	feedPublished     prometheus.Counter
	feedConsumed      prometheus.Counter
	feedPublishErrors prometheus.Counter

	// Game loop
	tickCount   prometheus.Counter
	tickLatency prometheus.Histogram

	// Errors
	errorsByComponent *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
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
		namespace:        "huddle",
		subsystem:        "momentum",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
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

	m.eventsProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_processed_total",
		Help:      "Game events consumed by the engine.",
	})
	m.eventsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_duplicate_total",
		Help:      "Replayed event ids dropped by the deduper.",
	})
	m.eventsDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_dropped_total",
		Help:      "Events the engine refused (disabled, bad reference, feed full).",
	})
	m.eventImpact = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "event_impact",
		Help:      "Resolved momentum impact magnitude per event.",
		Buckets:   m.histogramBuckets,
	})

	m.momentumValue = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "value",
		Help:      "Current momentum value per team track.",
	}, []string{"team"})
	m.momentumLevel = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "level",
		Help:      "Current momentum band rank per team track (0=very_low .. 4=very_high).",
	}, []string{"team"})

	m.activeEffects = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active_effects",
		Help:      "Number of live performance modifiers.",
	})
	m.effectsSpawned = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "effects_spawned_total",
		Help:      "Performance modifiers spawned.",
	})

	m.composureActivations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "composure_activations_total",
		Help:      "Successful composure mode activations.",
	})
	m.composureRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "composure_rejected_total",
		Help:      "Composure activations rejected mid-cycle.",
	})

	m.crowdNoise = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "crowd_noise",
		Help:      "Aggregate crowd noise level.",
	})
	m.crowdEnthusiasm = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "crowd_enthusiasm",
		Help:      "Attendance-weighted average crowd enthusiasm.",
	})

	m.feedSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feed_size",
		Help:      "Events waiting in the intake feed.",
	})
	m.feedCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feed_capacity",
		Help:      "Configured intake feed capacity.",
	})
	m.feedUtilization = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feed_utilization",
		Help:      "Intake feed fill ratio.",
	})
	m.feedPublished = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feed_published_total",
		Help:      "Events accepted by the intake feed.",
	})
	m.feedConsumed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feed_consumed_total",
		Help:      "Events handed to the game loop.",
	})
	m.feedPublishErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feed_publish_errors_total",
		Help:      "Publish attempts rejected by the intake feed.",
	})

	m.tickCount = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ticks_total",
		Help:      "Game loop ticks executed.",
	})
	m.tickLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tick_latency_ms",
		Help:      "Wall time spent inside a single engine tick.",
		Buckets:   m.histogramBuckets,
	})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Errors by component and type.",
	}, []string{"component", "type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_bytes",
		Help:      "Allocated heap bytes.",
	})
	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutines",
		Help:      "Live goroutine count.",
	})
}

// Event intake helpers.

func RecordEventProcessed() {
	if globalManager.enabled {
		globalManager.eventsProcessed.Inc()
	}
}

func RecordEventDuplicate() {
	if globalManager.enabled {
		globalManager.eventsDuplicate.Inc()
	}
}

func RecordEventDropped() {
	if globalManager.enabled {
		globalManager.eventsDropped.Inc()
	}
}

func RecordEventImpact(impact float64) {
	if globalManager.enabled {
		globalManager.eventImpact.Observe(impact)
	}
}

// Momentum helpers.

func UpdateMomentum(team string, value float64) {
	if globalManager.enabled {
		globalManager.momentumValue.WithLabelValues(team).Set(value)
	}
}

func UpdateMomentumLevel(team string, rank int) {
	if globalManager.enabled {
		globalManager.momentumLevel.WithLabelValues(team).Set(float64(rank))
	}
}

// Effect helpers.

func UpdateActiveEffects(count int) {
	if globalManager.enabled {
		globalManager.activeEffects.Set(float64(count))
	}
}

func RecordEffectsSpawned(count int) {
	if globalManager.enabled && count > 0 {
		globalManager.effectsSpawned.Add(float64(count))
	}
}

// Composure helpers.

func RecordComposureActivation() {
	if globalManager.enabled {
		globalManager.composureActivations.Inc()
	}
}

func RecordComposureRejected() {
	if globalManager.enabled {
		globalManager.composureRejected.Inc()
	}
}

// Crowd helpers.

func UpdateCrowdNoise(level float64) {
	if globalManager.enabled {
		globalManager.crowdNoise.Set(level)
	}
}

func UpdateCrowdEnthusiasm(value float64) {
	if globalManager.enabled {
		globalManager.crowdEnthusiasm.Set(value)
	}
}

// Feed helpers.

func UpdateFeedSize(size int) {
	if globalManager.enabled {
		globalManager.feedSize.Set(float64(size))
	}
}

func UpdateFeedCapacity(capacity int) {
	if globalManager.enabled {
		globalManager.feedCapacity.Set(float64(capacity))
	}
}

func UpdateFeedUtilization(utilization float64) {
	if globalManager.enabled {
		globalManager.feedUtilization.Set(utilization)
	}
}

func RecordFeedPublish() {
	if globalManager.enabled {
		globalManager.feedPublished.Inc()
	}
}

func RecordFeedConsume() {
	if globalManager.enabled {
		globalManager.feedConsumed.Inc()
	}
}

func RecordFeedPublishError() {
	if globalManager.enabled {
		globalManager.feedPublishErrors.Inc()
	}
}

// Loop helpers.

func RecordTick() {
	if globalManager.enabled {
		globalManager.tickCount.Inc()
	}
}

func RecordTickLatency(latencyMs float64) {
	if globalManager.enabled {
		globalManager.tickLatency.Observe(latencyMs)
	}
}

// Error helpers.

func RecordErrorByComponent(component, errorType string) {
	if globalManager.enabled {
		globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
	}
}

// System helpers.

func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

func UpdateSystemGoroutineCount(count int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(count))
	}
}

// GetRegistry returns the custom registry backing the global manager,
// for exposition handlers.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
