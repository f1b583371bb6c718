package carrier

import (
	"context"
	"errors"

	"github.com/guttosm/parcel-service/internal/circuitbreaker"
	"github.com/guttosm/parcel-service/internal/domain/model"
)

// CircuitBreakerQuoter wraps a RateQuoter with circuit breaker protection.
type CircuitBreakerQuoter struct {
	next           RateQuoter
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCircuitBreakerQuoter creates a new quoter wrapper with circuit breaker.
func NewCircuitBreakerQuoter(next RateQuoter, cb *circuitbreaker.CircuitBreaker) *CircuitBreakerQuoter {
	return &CircuitBreakerQuoter{
		next:           next,
		circuitBreaker: cb,
	}
}

// QuoteRates requests rates unless the circuit is open.
func (q *CircuitBreakerQuoter) QuoteRates(ctx context.Context, shipment model.ShipmentRequest) ([]model.Rate, error) {
	var rates []model.Rate
	err := q.circuitBreaker.Execute(ctx, func(ctx context.Context) error {
		var cbErr error
		rates, cbErr = q.next.QuoteRates(ctx, shipment)
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, errors.Join(ErrCarrierUnavailable, err)
	}
	return rates, err
}

// Stats exposes the breaker state.
func (q *CircuitBreakerQuoter) Stats() circuitbreaker.Stats {
	return q.circuitBreaker.GetStats()
}
