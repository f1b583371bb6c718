// Package app provides service initialization.
package app

import (
	"github.com/guttosm/parcel-service/config"
	"github.com/guttosm/parcel-service/internal/service"
)

// InitializeServices initializes the packer, with a plan cache when cfg.Size > 0.
// More than one shard selects the sharded cache.
func InitializeServices(cfg config.CacheConfig) *service.ParcelPackerService {
	var opts []service.Option

	switch {
	case cfg.Size <= 0:
	case cfg.Shards > 1:
		opts = append(opts, service.WithCacheInterface(service.NewShardedCache(cfg.Size, cfg.TTL, cfg.Shards)))
	default:
		opts = append(opts, service.WithCache(cfg.Size, cfg.TTL))
	}

	return service.NewParcelPackerService(opts...)
}
