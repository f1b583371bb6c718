// Package metrics provides Prometheus metrics collection for the parcel service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PackDuration tracks packing plan computation duration.
	PackDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parcel_pack_duration_seconds",
			Help:    "Packing plan computation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// PackTotal tracks packing plans by outcome.
	PackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcel_packs_total",
			Help: "Total number of packing plans requested",
		},
		[]string{"status"},
	)

	// ParcelsTotal tracks parcels produced by freshly computed plans.
	ParcelsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parcel_parcels_total",
			Help: "Total number of parcels produced",
		},
	)

	// FallbackBoxesTotal tracks parcels that received the synthetic custom box.
	FallbackBoxesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parcel_fallback_boxes_total",
			Help: "Total number of parcels assigned the fallback box",
		},
	)

	// RateQuotesTotal tracks carrier rate requests by outcome.
	RateQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_rate_quotes_total",
			Help: "Total number of carrier rate requests",
		},
		[]string{"status"},
	)

	// RateQuoteDuration tracks carrier rate request duration.
	RateQuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "carrier_rate_quote_duration_seconds",
			Help:    "Carrier rate request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// CircuitBreakerState tracks breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// RecordPack records metrics for a packing plan request.
func RecordPack(duration time.Duration, status string) {
	PackDuration.Observe(duration.Seconds())
	PackTotal.WithLabelValues(status).Inc()
}

// RecordParcels records the parcels of a freshly computed plan.
func RecordParcels(parcels, fallbacks int) {
	ParcelsTotal.Add(float64(parcels))
	FallbackBoxesTotal.Add(float64(fallbacks))
}

// RecordRateQuote records metrics for a carrier rate request.
func RecordRateQuote(duration time.Duration, status string) {
	RateQuoteDuration.Observe(duration.Seconds())
	RateQuotesTotal.WithLabelValues(status).Inc()
}

// SetCircuitBreakerState publishes the numeric state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// WriteTextfile dumps the default registry in the node exporter textfile format.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
