// Package app provides box catalog initialization.
package app

import (
	"github.com/guttosm/parcel-service/config"
	"github.com/guttosm/parcel-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// InitializeCatalog loads the box catalog seed file. Without a file the
// catalog is empty and every parcel ships in the fallback box.
func InitializeCatalog(cfg config.CatalogConfig) (repository.BoxCatalogRepositoryInterface, error) {
	if cfg.File == "" {
		log.Debug().Msg("No box catalog file configured, using fallback box only")
		catalog, err := repository.NewStaticBoxCatalog(nil)
		if err != nil {
			return nil, err
		}
		return catalog, nil
	}

	catalog, err := repository.NewFileBoxCatalog(cfg.File)
	if err != nil {
		return nil, err
	}
	return catalog, nil
}
