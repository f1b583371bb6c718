package app

import (
	"bytes"
	"testing"

	"github.com/guttosm/parcel-service/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.LogConfig
		expected zerolog.Level
	}{
		{name: "default log level", cfg: config.LogConfig{}, expected: zerolog.InfoLevel},
		{name: "custom log level", cfg: config.LogConfig{Level: "debug"}, expected: zerolog.DebugLevel},
		{name: "pretty output", cfg: config.LogConfig{Level: "warn", Pretty: true}, expected: zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			InitializeLogger(tt.cfg, &buf)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
			log.Error().Msg("written")
			assert.Contains(t, buf.String(), "written")
		})
	}
}
