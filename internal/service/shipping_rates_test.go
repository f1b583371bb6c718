package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/guttosm/parcel-service/internal/mocks"
	"github.com/guttosm/parcel-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	origin = model.CarrierAddress{
		Name:    "Store Owner",
		Street1: "123 Store St",
		City:    "Store City",
		State:   "CA",
		Zip:     "90210",
		Country: "US",
	}
	shoeBox = model.BoxDefinition{ID: "box_shoe", Name: "Shoe", LengthCm: 30, WidthCm: 20, HeightCm: 12, WeightLimitLbs: 10}
	address = &model.Address{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Address1:    "1 Analytical Way",
		City:        "London",
		Province:    "LDN",
		PostalCode:  "N1",
		CountryCode: "GB",
	}
)

func cart(addr *model.Address) model.Cart {
	return model.Cart{
		ID:              "cart_1",
		Items:           []model.Item{{ID: "mug", UnitWeightGrams: 400, Quantity: 2, UnitLengthCm: 10, UnitWidthCm: 10, UnitHeightCm: 10}},
		ShippingAddress: addr,
	}
}

func usd(provider, amount string) model.Rate {
	return model.Rate{Provider: provider, Amount: decimal.RequireFromString(amount), Currency: "USD"}
}

func TestShippingService_PlanShipment(t *testing.T) {
	repo := new(mocks.MockBoxCatalogRepository)
	repo.On("List", mock.Anything, 100).Return([]model.BoxDefinition{shoeBox}, nil)

	svc := service.NewShippingService(repo, nil, nil, origin, 0)
	shipment, parcels, err := svc.PlanShipment(context.Background(), cart(address))

	require.NoError(t, err)
	require.Len(t, parcels, 1)
	assert.Equal(t, "box_shoe", parcels[0].Box.ID)
	assert.Equal(t, origin, shipment.AddressFrom)
	assert.Equal(t, model.CarrierAddress{
		Name:     "Ada Lovelace",
		Street1:  "1 Analytical Way",
		City:     "London",
		State:    "LDN",
		Zip:      "N1",
		Country:  "GB",
		Validate: true,
	}, shipment.AddressTo)
	require.Len(t, shipment.Parcels, 1)
	assert.Equal(t, model.CarrierParcel{
		Length:       30,
		Width:        20,
		Height:       12,
		DistanceUnit: "cm",
		Weight:       800 + model.TareWeightGrams,
		MassUnit:     "g",
	}, shipment.Parcels[0])
	repo.AssertExpectations(t)
}

func TestShippingService_GetRates(t *testing.T) {
	tests := []struct {
		name          string
		address       *model.Address
		withQuoter    bool
		setupQuoter   func(*mocks.MockRateQuoter)
		setupCatalog  func(*mocks.MockBoxCatalogRepository)
		expectedError error
		expected      []string
	}{
		{
			name:          "shipping address required",
			address:       nil,
			setupCatalog:  func(*mocks.MockBoxCatalogRepository) {},
			expectedError: service.ErrShippingAddressRequired,
		},
		{
			name:    "no carrier configured",
			address: address,
			setupCatalog: func(m *mocks.MockBoxCatalogRepository) {
				m.On("List", mock.Anything, 100).Return([]model.BoxDefinition{shoeBox}, nil)
			},
			expected: []string{},
		},
		{
			name:       "rates sorted by amount",
			address:    address,
			withQuoter: true,
			setupQuoter: func(m *mocks.MockRateQuoter) {
				m.On("QuoteRates", mock.Anything, mock.Anything).
					Return([]model.Rate{usd("ups", "18.20"), usd("usps", "7.95"), usd("dhl", "12.00")}, nil)
			},
			setupCatalog: func(m *mocks.MockBoxCatalogRepository) {
				m.On("List", mock.Anything, 100).Return([]model.BoxDefinition{shoeBox}, nil)
			},
			expected: []string{"usps", "dhl", "ups"},
		},
		{
			name:       "carrier failure yields no rates",
			address:    address,
			withQuoter: true,
			setupQuoter: func(m *mocks.MockRateQuoter) {
				m.On("QuoteRates", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
			},
			setupCatalog: func(m *mocks.MockBoxCatalogRepository) {
				m.On("List", mock.Anything, 100).Return([]model.BoxDefinition{shoeBox}, nil)
			},
			expected: []string{},
		},
		{
			name:       "catalog failure falls back to custom box",
			address:    address,
			withQuoter: true,
			setupQuoter: func(m *mocks.MockRateQuoter) {
				m.On("QuoteRates", mock.Anything, mock.MatchedBy(func(s model.ShipmentRequest) bool {
					return len(s.Parcels) == 1 && s.Parcels[0].Length == 30 && s.Parcels[0].Height == 10
				})).Return([]model.Rate{usd("usps", "9.00")}, nil)
			},
			setupCatalog: func(m *mocks.MockBoxCatalogRepository) {
				m.On("List", mock.Anything, 100).Return(nil, errors.New("file missing"))
			},
			expected: []string{"usps"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockBoxCatalogRepository)
			tt.setupCatalog(repo)

			var svc *service.ShippingService
			quoter := new(mocks.MockRateQuoter)
			if tt.withQuoter {
				tt.setupQuoter(quoter)
				svc = service.NewShippingService(repo, nil, quoter, origin, 0)
			} else {
				svc = service.NewShippingService(repo, nil, nil, origin, 0)
			}

			rates, err := svc.GetRates(context.Background(), cart(tt.address))

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, rates)
				return
			}
			require.NoError(t, err)
			providers := make([]string, len(rates))
			for i, r := range rates {
				providers[i] = r.Provider
			}
			assert.Equal(t, tt.expected, providers)
			repo.AssertExpectations(t)
			quoter.AssertExpectations(t)
		})
	}
}

func TestShippingService_CalculateOptionPrice(t *testing.T) {
	tests := []struct {
		name          string
		optionID      string
		withQuoter    bool
		rates         []model.Rate
		quoteErr      error
		expectedPrice int64
		expectedError error
	}{
		{
			name:          "unknown option",
			optionID:      "pigeon",
			expectedError: service.ErrUnknownOption,
		},
		{
			name:          "no carrier configured",
			optionID:      "shippo-standard",
			expectedPrice: 1500,
		},
		{
			name:          "cheapest rate in minor units",
			optionID:      "shippo-express",
			withQuoter:    true,
			rates:         []model.Rate{usd("ups", "18.20"), usd("usps", "7.95")},
			expectedPrice: 795,
		},
		{
			name:          "no rates",
			optionID:      "shippo-standard",
			withQuoter:    true,
			rates:         []model.Rate{},
			expectedPrice: 2500,
		},
		{
			name:          "carrier failure",
			optionID:      "shippo-standard",
			withQuoter:    true,
			quoteErr:      errors.New("bad gateway"),
			expectedError: service.ErrRateCalculationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockBoxCatalogRepository)
			repo.On("List", mock.Anything, 100).Return([]model.BoxDefinition{shoeBox}, nil).Maybe()

			var svc *service.ShippingService
			if tt.withQuoter {
				quoter := new(mocks.MockRateQuoter)
				if tt.quoteErr != nil {
					quoter.On("QuoteRates", mock.Anything, mock.Anything).Return(nil, tt.quoteErr)
				} else {
					quoter.On("QuoteRates", mock.Anything, mock.Anything).Return(tt.rates, nil)
				}
				svc = service.NewShippingService(repo, nil, quoter, origin, 0)
			} else {
				svc = service.NewShippingService(repo, nil, nil, origin, 0)
			}

			price, err := svc.CalculateOptionPrice(context.Background(), tt.optionID, cart(nil))

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPrice, price.Price)
			assert.True(t, price.IsCalculated)
		})
	}
}

func TestShippingService_PackErrorPropagates(t *testing.T) {
	packer := new(mocks.MockParcelPacker)
	errBad := &model.InputError{Field: "items[0].quantity", Message: "must be a non-negative integer"}
	packer.On("Pack", mock.Anything, mock.Anything).Return(nil, errBad)

	svc := service.NewShippingService(nil, packer, nil, origin, 0)
	_, err := svc.GetRates(context.Background(), cart(address))

	assert.ErrorIs(t, err, model.ErrInvalidInput)
	packer.AssertExpectations(t)
}

func TestShippingService_FulfillmentOptions(t *testing.T) {
	svc := service.NewShippingService(nil, nil, nil, origin, 0)

	options := svc.FulfillmentOptions()

	assert.Equal(t, []model.FulfillmentOption{
		{ID: "shippo-standard", Name: "Standard Shipping"},
		{ID: "shippo-express", Name: "Express Shipping"},
	}, options)
	assert.True(t, svc.ValidateOption("shippo-express"))
	assert.False(t, svc.ValidateOption(""))

	options[0].Name = "changed"
	assert.Equal(t, "Standard Shipping", svc.FulfillmentOptions()[0].Name)
}
