package carrier

import (
	"context"
	"fmt"

	"github.com/guttosm/parcel-service/internal/domain/model"
	"golang.org/x/time/rate"
)

// RateLimitedQuoter throttles outbound carrier requests.
type RateLimitedQuoter struct {
	next    RateQuoter
	limiter *rate.Limiter
}

// NewRateLimitedQuoter allows rps requests per second with the given burst.
// A non-positive rps disables limiting.
func NewRateLimitedQuoter(next RateQuoter, rps float64, burst int) *RateLimitedQuoter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimitedQuoter{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// QuoteRates waits for a token, honouring ctx, then forwards the request.
func (q *RateLimitedQuoter) QuoteRates(ctx context.Context, shipment model.ShipmentRequest) ([]model.Rate, error) {
	if err := q.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for carrier rate limit: %w", err)
	}
	return q.next.QuoteRates(ctx, shipment)
}
