package service

import (
	"context"
	"errors"

	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/guttosm/parcel-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// BoxCatalogService provides read access to the configured box catalog.
type BoxCatalogService interface {
	List(ctx context.Context, limit int) ([]model.BoxDefinition, error)
	Count(ctx context.Context) (int, error)
}

// BoxCatalogServiceImpl implements BoxCatalogService.
type BoxCatalogServiceImpl struct {
	catalogRepo repository.BoxCatalogRepositoryInterface
}

// NewBoxCatalogService creates a new box catalog service.
func NewBoxCatalogService(catalogRepo repository.BoxCatalogRepositoryInterface) BoxCatalogService {
	return &BoxCatalogServiceImpl{
		catalogRepo: catalogRepo,
	}
}

func (s *BoxCatalogServiceImpl) List(ctx context.Context, limit int) ([]model.BoxDefinition, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if limit <= 0 {
		limit = repository.DefaultCatalogLimit
	}
	return s.catalogRepo.List(ctx, limit)
}

func (s *BoxCatalogServiceImpl) Count(ctx context.Context) (int, error) {
	if s.catalogRepo == nil {
		return 0, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.Count(ctx)
}
