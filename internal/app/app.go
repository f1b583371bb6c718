// Package app provides application initialization and dependency injection.
package app

import (
	"fmt"

	"github.com/guttosm/parcel-service/config"
	"github.com/guttosm/parcel-service/internal/circuitbreaker"
	"github.com/guttosm/parcel-service/internal/service"
)

// Components holds everything a command needs.
type Components struct {
	Packer   *service.ParcelPackerService
	Catalog  service.BoxCatalogService
	Shipping *service.ShippingService
	// CarrierBreaker is nil when no carrier is configured.
	CarrierBreaker *circuitbreaker.CircuitBreaker
}

// InitializeApp creates and wires all application dependencies.
// The logger must already be initialized.
func InitializeApp(cfg config.Config) (*Components, error) {
	packer := InitializeServices(cfg.Cache)

	catalogRepo, err := InitializeCatalog(cfg.Catalog)
	if err != nil {
		packer.Close()
		return nil, fmt.Errorf("initialize box catalog: %w", err)
	}

	carrierComponents, err := InitializeCarrier(cfg.Carrier)
	if err != nil {
		packer.Close()
		return nil, fmt.Errorf("initialize carrier: %w", err)
	}

	shipping := service.NewShippingService(catalogRepo, packer, carrierComponents.Quoter, cfg.Origin, cfg.Catalog.Limit)

	return &Components{
		Packer:         packer,
		Catalog:        service.NewBoxCatalogService(catalogRepo),
		Shipping:       shipping,
		CarrierBreaker: carrierComponents.CircuitBreaker,
	}, nil
}

// Close releases background resources.
func (c *Components) Close() {
	if c == nil || c.Packer == nil {
		return
	}
	c.Packer.Close()
}
