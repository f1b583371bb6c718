// Package app provides carrier initialization.
package app

import (
	"github.com/guttosm/parcel-service/config"
	"github.com/guttosm/parcel-service/internal/carrier"
	"github.com/guttosm/parcel-service/internal/circuitbreaker"
	"github.com/rs/zerolog/log"
)

// CarrierComponents holds the configured rate quoter chain.
type CarrierComponents struct {
	// Quoter is nil when no carrier is configured.
	Quoter         carrier.RateQuoter
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeCarrier builds rate limiting around circuit breaker protection
// around the rate card.
func InitializeCarrier(cfg config.CarrierConfig) (*CarrierComponents, error) {
	if cfg.RateCardFile == "" {
		log.Debug().Msg("No carrier configured")
		return &CarrierComponents{}, nil
	}

	card, err := carrier.LoadRateCard(cfg.RateCardFile)
	if err != nil {
		return nil, err
	}

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "carrier-rates",
	})

	var quoter carrier.RateQuoter = carrier.NewCircuitBreakerQuoter(card, cb)
	quoter = carrier.NewRateLimitedQuoter(quoter, cfg.RateLimitRPS, cfg.RateLimitBurst)

	log.Info().
		Str("rate_card", cfg.RateCardFile).
		Int("services", len(card.Services)).
		Float64("rate_limit_rps", cfg.RateLimitRPS).
		Msg("Carrier rate card loaded")

	return &CarrierComponents{Quoter: quoter, CircuitBreaker: cb}, nil
}
