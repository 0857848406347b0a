package ghin

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the request lifecycle
// and the cache beneath it. It is safe for concurrent use; a nil collector
// is inert.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec

	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	cacheSize   *prometheus.GaugeVec

	errorsTotal *prometheus.CounterVec
}

// NewMetricsCollector creates a collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using the supplied
// registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ghin_requests_total",
				Help: "Total number of requests made to the GHIN service",
			},
			[]string{"method", "status_code", "entity"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ghin_request_duration_seconds",
				Help:    "Duration of GHIN requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "status_code", "entity"},
		),
		requestsInFlight: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ghin_requests_in_flight",
				Help: "Number of GHIN requests currently in flight",
			},
			[]string{"method", "entity"},
		),
		cacheHits: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ghin_cache_hits_total",
				Help: "Total number of response cache hits",
			},
			[]string{"method", "entity"},
		),
		cacheMisses: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ghin_cache_misses_total",
				Help: "Total number of response cache misses",
			},
			[]string{"method", "entity"},
		),
		cacheSize: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ghin_cache_size",
				Help: "Current number of entries in the response cache",
			},
			[]string{"name"},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ghin_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type", "method", "entity"},
		),
	}
}

// RecordRequest records request count and duration.
func (mc *MetricsCollector) RecordRequest(method, entity string, statusCode int, duration time.Duration) {
	if mc == nil {
		return
	}

	statusCodeStr := strconv.Itoa(statusCode)
	mc.requestsTotal.WithLabelValues(method, statusCodeStr, entity).Inc()
	mc.requestDuration.WithLabelValues(method, statusCodeStr, entity).Observe(duration.Seconds())
}

// RecordRequestStart increments the in-flight gauge.
func (mc *MetricsCollector) RecordRequestStart(method, entity string) {
	if mc == nil {
		return
	}

	mc.requestsInFlight.WithLabelValues(method, entity).Inc()
}

// RecordRequestEnd decrements the in-flight gauge.
func (mc *MetricsCollector) RecordRequestEnd(method, entity string) {
	if mc == nil {
		return
	}

	mc.requestsInFlight.WithLabelValues(method, entity).Dec()
}

// RecordCacheHit increments the cache hit counter.
func (mc *MetricsCollector) RecordCacheHit(method, entity string) {
	if mc == nil {
		return
	}

	mc.cacheHits.WithLabelValues(method, entity).Inc()
}

// RecordCacheMiss increments the cache miss counter.
func (mc *MetricsCollector) RecordCacheMiss(method, entity string) {
	if mc == nil {
		return
	}

	mc.cacheMisses.WithLabelValues(method, entity).Inc()
}

// RecordCacheSize sets the cache size gauge.
func (mc *MetricsCollector) RecordCacheSize(name string, size int) {
	if mc == nil {
		return
	}

	mc.cacheSize.WithLabelValues(name).Set(float64(size))
}

// RecordError increments the error counter by type.
func (mc *MetricsCollector) RecordError(errorType, method, entity string) {
	if mc == nil {
		return
	}

	mc.errorsTotal.WithLabelValues(errorType, method, entity).Inc()
}
