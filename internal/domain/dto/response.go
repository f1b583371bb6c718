package dto

import (
	"errors"
	"time"

	"github.com/guttosm/parcel-service/internal/carrier"
	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/guttosm/parcel-service/internal/repository"
	"github.com/guttosm/parcel-service/internal/service"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal = "internal_error"
	// ErrCodeAddressRequired indicates a missing shipping address.
	ErrCodeAddressRequired = "shipping_address_required"
	// ErrCodeNotFound indicates an unknown fulfillment option.
	ErrCodeNotFound = "not_found"
	// ErrCodeCarrierUnavailable indicates carrier calls are short-circuited.
	ErrCodeCarrierUnavailable = "carrier_unavailable"
	// ErrCodeRateCalculation indicates the carrier could not price the cart.
	ErrCodeRateCalculation = "rate_calculation_failed"
	// ErrCodeInvalidCatalog indicates a malformed box catalog.
	ErrCodeInvalidCatalog = "invalid_catalog"
	// ErrCodeInvalidConfiguration indicates rejected environment or flag values.
	ErrCodeInvalidConfiguration = "invalid_configuration"
)

// PackedItemResponse is one item share inside a parcel.
type PackedItemResponse struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title,omitempty" yaml:"title,omitempty"`
	Quantity    int     `json:"quantity" yaml:"quantity"`
	WeightGrams float64 `json:"weight_grams" yaml:"weight_grams"`
}

// ParcelResponse describes a packed parcel and its box.
type ParcelResponse struct {
	BoxID               string               `json:"box_id" yaml:"box_id"`
	BoxName             string               `json:"box_name" yaml:"box_name"`
	LengthCm            float64              `json:"length" yaml:"length"`
	WidthCm             float64              `json:"width" yaml:"width"`
	HeightCm            float64              `json:"height" yaml:"height"`
	GrossWeightGrams    float64              `json:"weight_grams" yaml:"weight_grams"`
	ShippingWeightGrams float64              `json:"shipping_weight_grams" yaml:"shipping_weight_grams"`
	VolumeCm3           float64              `json:"volume" yaml:"volume"`
	Items               []PackedItemResponse `json:"items" yaml:"items"`
}

// PackResponse is the output of the pack command.
type PackResponse struct {
	Parcels   []ParcelResponse `json:"parcels" yaml:"parcels"`
	Timestamp time.Time        `json:"timestamp" yaml:"timestamp"`
}

// NewPackResponse converts packed parcels for output.
func NewPackResponse(parcels []model.Parcel) PackResponse {
	out := make([]ParcelResponse, len(parcels))
	for i, p := range parcels {
		items := make([]PackedItemResponse, len(p.Items))
		for j, it := range p.Items {
			items[j] = PackedItemResponse{
				ID:          it.ID,
				Title:       it.Title,
				Quantity:    it.PackedQuantity,
				WeightGrams: it.WeightGrams,
			}
		}
		out[i] = ParcelResponse{
			BoxID:               p.Box.ID,
			BoxName:             p.Box.Name,
			LengthCm:            p.Box.LengthCm,
			WidthCm:             p.Box.WidthCm,
			HeightCm:            p.Box.HeightCm,
			GrossWeightGrams:    p.GrossWeightGrams,
			ShippingWeightGrams: p.ShippingWeightGrams(),
			VolumeCm3:           p.VolumeCm3,
			Items:               items,
		}
	}
	return PackResponse{Parcels: out, Timestamp: time.Now()}
}

// RatesResponse is the output of the rates command.
type RatesResponse struct {
	CartID    string       `json:"cart_id,omitempty" yaml:"cart_id,omitempty"`
	Rates     []model.Rate `json:"rates" yaml:"rates"`
	Timestamp time.Time    `json:"timestamp" yaml:"timestamp"`
}

// NewRatesResponse wraps rates for output.
func NewRatesResponse(cartID string, rates []model.Rate) RatesResponse {
	if rates == nil {
		rates = []model.Rate{}
	}
	return RatesResponse{CartID: cartID, Rates: rates, Timestamp: time.Now()}
}

// OptionPriceResponse is the output of the price command.
type OptionPriceResponse struct {
	OptionID     string `json:"option_id" yaml:"option_id"`
	Price        int64  `json:"price" yaml:"price"`
	IsCalculated bool   `json:"is_calculated_price" yaml:"is_calculated_price"`
}

// NewOptionPriceResponse wraps an option price for output.
func NewOptionPriceResponse(optionID string, price model.OptionPrice) OptionPriceResponse {
	return OptionPriceResponse{OptionID: optionID, Price: price.Price, IsCalculated: price.IsCalculated}
}

// BoxesResponse is the output of the boxes command.
type BoxesResponse struct {
	Boxes []model.BoxDefinition `json:"boxes" yaml:"boxes"`
	Count int                   `json:"count" yaml:"count"`
}

// OptionsResponse is the output of the options command.
type OptionsResponse struct {
	Options []model.FulfillmentOption `json:"options" yaml:"options"`
}

// ErrorResponse represents a standardized error document.
type ErrorResponse struct {
	Error     string            `json:"error" yaml:"error"`
	Message   string            `json:"message,omitempty" yaml:"message,omitempty"`
	Details   map[string]string `json:"details,omitempty" yaml:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp" yaml:"timestamp"`
}

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithDetail adds a detail entry to the error response.
func (e ErrorResponse) WithDetail(key, value string) ErrorResponse {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// ErrCodeFromError returns the error code for a domain error.
func ErrCodeFromError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrInvalidInput):
		return ErrCodeInvalidRequest
	case errors.Is(err, service.ErrShippingAddressRequired):
		return ErrCodeAddressRequired
	case errors.Is(err, service.ErrUnknownOption):
		return ErrCodeNotFound
	case errors.Is(err, carrier.ErrCarrierUnavailable):
		return ErrCodeCarrierUnavailable
	case errors.Is(err, service.ErrRateCalculationFailed):
		return ErrCodeRateCalculation
	case errors.Is(err, repository.ErrInvalidCatalog), errors.Is(err, carrier.ErrInvalidRateCard):
		return ErrCodeInvalidCatalog
	default:
		return ErrCodeInternal
	}
}
