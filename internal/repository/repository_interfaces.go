// Package repository provides read access to the box catalog.
package repository

import (
	"context"

	"github.com/guttosm/parcel-service/internal/domain/model"
)

// DefaultCatalogLimit bounds how many boxes a listing returns when no limit is given.
const DefaultCatalogLimit = 100

// BoxCatalogRepositoryInterface defines the interface for box catalog access.
// Listings preserve catalog order, which the packer uses to break volume ties.
type BoxCatalogRepositoryInterface interface {
	List(ctx context.Context, limit int) ([]model.BoxDefinition, error)
	Count(ctx context.Context) (int, error)
}
