// Package app provides logger initialization.
package app

import (
	"io"

	"github.com/guttosm/parcel-service/config"
	"github.com/guttosm/parcel-service/internal/logger"
)

// InitializeLogger initializes the JSON logger, writing to w.
func InitializeLogger(cfg config.LogConfig, w io.Writer) {
	logger.Init(cfg.Level, cfg.Pretty, w)
}
