// Package cache defines the contract for packing plan caches.
package cache

import "github.com/guttosm/parcel-service/internal/domain/model"

// Cache stores packing plans keyed by an input fingerprint.
type Cache interface {
	Get(key uint64) ([]model.Parcel, bool)
	Set(key uint64, value []model.Parcel)
	Invalidate(key uint64)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
