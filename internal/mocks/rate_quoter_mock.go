// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockRateQuoter struct {
	mock.Mock
}

func (m *MockRateQuoter) QuoteRates(ctx context.Context, shipment model.ShipmentRequest) ([]model.Rate, error) {
	args := m.Called(ctx, shipment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rate), args.Error(1)
}
