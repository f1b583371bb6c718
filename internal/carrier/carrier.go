// Package carrier defines the rate-quoting collaborator and decorators around it.
package carrier

import (
	"context"
	"errors"
	"slices"

	"github.com/guttosm/parcel-service/internal/domain/model"
)

// ErrCarrierUnavailable is returned when carrier calls are being short-circuited.
var ErrCarrierUnavailable = errors.New("carrier unavailable")

// RateQuoter returns carrier offers for a shipment.
type RateQuoter interface {
	QuoteRates(ctx context.Context, shipment model.ShipmentRequest) ([]model.Rate, error)
}

// QuoterFunc adapts a function to RateQuoter.
type QuoterFunc func(ctx context.Context, shipment model.ShipmentRequest) ([]model.Rate, error)

// QuoteRates calls f.
func (f QuoterFunc) QuoteRates(ctx context.Context, shipment model.ShipmentRequest) ([]model.Rate, error) {
	return f(ctx, shipment)
}

// SortRates returns rates ordered by ascending amount; equal amounts keep their order.
func SortRates(rates []model.Rate) []model.Rate {
	sorted := slices.Clone(rates)
	slices.SortStableFunc(sorted, func(a, b model.Rate) int {
		return a.Amount.Cmp(b.Amount)
	})
	return sorted
}
