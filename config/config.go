// Package config provides configuration management for the parcel service.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/guttosm/parcel-service/internal/i18n"
)

// Config holds the complete application configuration.
type Config struct {
	Log     LogConfig
	Catalog CatalogConfig
	Cache   CacheConfig
	Carrier CarrierConfig
	Origin  model.CarrierAddress
	Metrics MetricsConfig
	Locale  string
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// CatalogConfig holds box catalog configuration.
type CatalogConfig struct {
	// File is a JSON or YAML seed file; empty means no catalog boxes.
	File  string
	Limit int
}

// CacheConfig holds packing plan cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
	// Shards > 1 splits the cache into independently locked shards.
	Shards int
}

// CarrierConfig holds rate quoting configuration.
type CarrierConfig struct {
	// RateCardFile enables the offline rate card quoter; empty means no carrier.
	RateCardFile   string
	RateLimitRPS   float64
	RateLimitBurst int
	Timeout        time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	// TextfilePath receives the metrics registry after every command.
	TextfilePath string
}

// CLIOverrides holds command-line flag overrides. Nil fields are not applied.
type CLIOverrides struct {
	LogLevel     *string
	CatalogFile  *string
	RateCardFile *string
	CacheSize    *int
	Locale       *string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Catalog: CatalogConfig{
			File:  getEnv("CATALOG_FILE", ""),
			Limit: getEnvInt("CATALOG_LIMIT", 100),
		},
		Cache: CacheConfig{
			Size:   getEnvInt("CACHE_SIZE", 1000),
			TTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),
			Shards: getEnvInt("CACHE_SHARDS", 1),
		},
		Carrier: CarrierConfig{
			RateCardFile:                   getEnv("RATE_CARD_FILE", ""),
			RateLimitRPS:                   getEnvFloat("CARRIER_RATE_LIMIT_RPS", 0),
			RateLimitBurst:                 getEnvInt("CARRIER_RATE_LIMIT_BURST", 1),
			Timeout:                        getEnvDuration("CARRIER_TIMEOUT", 10*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Origin: model.CarrierAddress{
			Name:    getEnv("ORIGIN_NAME", "Store Owner"),
			Street1: getEnv("ORIGIN_STREET1", "123 Store St"),
			Street2: getEnv("ORIGIN_STREET2", ""),
			City:    getEnv("ORIGIN_CITY", "Store City"),
			State:   getEnv("ORIGIN_STATE", "CA"),
			Zip:     getEnv("ORIGIN_ZIP", "90210"),
			Country: getEnv("ORIGIN_COUNTRY", "US"),
		},
		Metrics: MetricsConfig{
			TextfilePath: getEnv("METRICS_TEXTFILE", ""),
		},
		Locale: i18n.ResolveLocale(os.Getenv("LANG")),
	}
}

// ApplyOverrides applies command-line flag overrides on top of the environment.
func (c *Config) ApplyOverrides(o *CLIOverrides) {
	if o == nil {
		return
	}
	if o.LogLevel != nil && *o.LogLevel != "" {
		c.Log.Level = *o.LogLevel
	}
	if o.CatalogFile != nil && *o.CatalogFile != "" {
		c.Catalog.File = *o.CatalogFile
	}
	if o.RateCardFile != nil && *o.RateCardFile != "" {
		c.Carrier.RateCardFile = *o.RateCardFile
	}
	if o.CacheSize != nil && *o.CacheSize >= 0 {
		c.Cache.Size = *o.CacheSize
	}
	if o.Locale != nil && *o.Locale != "" {
		c.Locale = i18n.ResolveLocale(*o.Locale)
	}
}

// Validate checks the final configuration.
func (c Config) Validate() error {
	var errs []error
	if c.Catalog.Limit <= 0 {
		errs = append(errs, errors.New("CATALOG_LIMIT must be > 0"))
	}
	if c.Cache.Size < 0 {
		errs = append(errs, errors.New("CACHE_SIZE must be >= 0"))
	}
	if c.Cache.Shards < 0 {
		errs = append(errs, errors.New("CACHE_SHARDS must be >= 0"))
	}
	if c.Carrier.RateLimitRPS < 0 {
		errs = append(errs, errors.New("CARRIER_RATE_LIMIT_RPS must be >= 0"))
	}
	if c.Carrier.RateLimitBurst < 0 {
		errs = append(errs, errors.New("CARRIER_RATE_LIMIT_BURST must be >= 0"))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
