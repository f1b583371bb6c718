package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/parcel-service/internal/carrier"
	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/guttosm/parcel-service/internal/metrics"
	"github.com/guttosm/parcel-service/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	// ErrShippingAddressRequired is returned when rates are requested without a destination.
	ErrShippingAddressRequired = errors.New("shipping address is required")
	// ErrUnknownOption is returned for fulfillment option IDs this service does not offer.
	ErrUnknownOption = errors.New("unknown fulfillment option")
	// ErrRateCalculationFailed is returned when the carrier could not price an option.
	ErrRateCalculationFailed = errors.New("failed to calculate shipping rates")
)

// Prices in minor currency units used when no carrier rate is available.
const (
	UnconfiguredCarrierPrice int64 = 1500
	NoRatesPrice             int64 = 2500
)

var minorUnitsPerMajor = decimal.NewFromInt(100)

var fulfillmentOptions = []model.FulfillmentOption{
	{ID: "shippo-standard", Name: "Standard Shipping"},
	{ID: "shippo-express", Name: "Express Shipping"},
}

// ShippingService turns carts into carrier rate requests.
type ShippingService struct {
	catalog      repository.BoxCatalogRepositoryInterface
	packer       ParcelPacker
	quoter       carrier.RateQuoter
	origin       model.CarrierAddress
	catalogLimit int
}

// NewShippingService creates a new ShippingService.
// A nil quoter means no carrier is configured; a nil catalog packs every
// parcel into the fallback box.
func NewShippingService(
	catalog repository.BoxCatalogRepositoryInterface,
	packer ParcelPacker,
	quoter carrier.RateQuoter,
	origin model.CarrierAddress,
	catalogLimit int,
) *ShippingService {
	if packer == nil {
		packer = NewParcelPackerService()
	}
	if catalogLimit <= 0 {
		catalogLimit = repository.DefaultCatalogLimit
	}
	return &ShippingService{
		catalog:      catalog,
		packer:       packer,
		quoter:       quoter,
		origin:       origin,
		catalogLimit: catalogLimit,
	}
}

// FulfillmentOptions lists the shipping options offered at checkout.
func (s *ShippingService) FulfillmentOptions() []model.FulfillmentOption {
	out := make([]model.FulfillmentOption, len(fulfillmentOptions))
	copy(out, fulfillmentOptions)
	return out
}

// ValidateOption reports whether optionID is one of FulfillmentOptions.
func (s *ShippingService) ValidateOption(optionID string) bool {
	for _, o := range fulfillmentOptions {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

// PlanShipment packs the cart and builds the carrier request for it.
func (s *ShippingService) PlanShipment(ctx context.Context, cart model.Cart) (model.ShipmentRequest, []model.Parcel, error) {
	boxes := s.loadCatalog(ctx, cart.ID)

	parcels, err := s.packer.Pack(cart.Items, boxes)
	if err != nil {
		return model.ShipmentRequest{}, nil, err
	}

	var to model.Address
	if cart.ShippingAddress != nil {
		to = *cart.ShippingAddress
	}

	shipment := model.ShipmentRequest{
		AddressFrom: s.origin,
		AddressTo:   to.ToCarrierAddress(),
		Parcels:     make([]model.CarrierParcel, len(parcels)),
	}
	for i, p := range parcels {
		shipment.Parcels[i] = p.ToCarrierParcel()
	}
	return shipment, parcels, nil
}

// GetRates returns carrier rates for the cart sorted by ascending amount.
// Carrier failures are logged and yield no rates.
func (s *ShippingService) GetRates(ctx context.Context, cart model.Cart) ([]model.Rate, error) {
	if cart.ShippingAddress == nil {
		return nil, ErrShippingAddressRequired
	}

	shipment, _, err := s.PlanShipment(ctx, cart)
	if err != nil {
		return nil, err
	}

	if s.quoter == nil {
		log.Debug().Str("cart_id", cart.ID).Msg("No carrier configured, returning no rates")
		return []model.Rate{}, nil
	}

	rates, err := s.quote(ctx, shipment)
	if err != nil {
		log.Warn().Err(err).Str("cart_id", cart.ID).Msg("Carrier rate request failed")
		return []model.Rate{}, nil
	}
	return rates, nil
}

// CalculateOptionPrice prices a fulfillment option from the cheapest carrier rate.
//
// Without a carrier the price is UnconfiguredCarrierPrice; when the carrier
// returns no rates it is NoRatesPrice.
func (s *ShippingService) CalculateOptionPrice(ctx context.Context, optionID string, cart model.Cart) (model.OptionPrice, error) {
	if !s.ValidateOption(optionID) {
		return model.OptionPrice{}, fmt.Errorf("%w: %q", ErrUnknownOption, optionID)
	}

	shipment, _, err := s.PlanShipment(ctx, cart)
	if err != nil {
		return model.OptionPrice{}, err
	}

	if s.quoter == nil {
		return model.OptionPrice{Price: UnconfiguredCarrierPrice, IsCalculated: true}, nil
	}

	rates, err := s.quote(ctx, shipment)
	if err != nil {
		log.Error().Err(err).Str("cart_id", cart.ID).Str("option_id", optionID).Msg("Carrier rate request failed")
		return model.OptionPrice{}, fmt.Errorf("%w: %w", ErrRateCalculationFailed, err)
	}
	if len(rates) == 0 {
		return model.OptionPrice{Price: NoRatesPrice, IsCalculated: true}, nil
	}

	price := rates[0].Amount.Mul(minorUnitsPerMajor).Round(0).IntPart()
	return model.OptionPrice{Price: price, IsCalculated: true}, nil
}

func (s *ShippingService) quote(ctx context.Context, shipment model.ShipmentRequest) ([]model.Rate, error) {
	start := time.Now()
	rates, err := s.quoter.QuoteRates(ctx, shipment)
	if err != nil {
		metrics.RecordRateQuote(time.Since(start), "error")
		return nil, err
	}
	if len(rates) == 0 {
		metrics.RecordRateQuote(time.Since(start), "empty")
		return []model.Rate{}, nil
	}
	metrics.RecordRateQuote(time.Since(start), "success")
	return carrier.SortRates(rates), nil
}

func (s *ShippingService) loadCatalog(ctx context.Context, cartID string) []model.BoxDefinition {
	if s.catalog == nil {
		return nil
	}
	boxes, err := s.catalog.List(ctx, s.catalogLimit)
	if err != nil {
		log.Warn().Err(err).Str("cart_id", cartID).Msg("Could not load box catalog, packing with fallback box only")
		return nil
	}
	return boxes
}
