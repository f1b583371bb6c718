// Package dto defines Data Transfer Objects for command input and output.
//
// DTOs decouple the decoded cart documents from the domain model,
// providing validation and conversion into packable items.
package dto

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/guttosm/parcel-service/internal/domain/model"
)

// Metadata keys carrying unit weight (grams) and dimensions (cm).
const (
	MetadataWeight = "weight"
	MetadataLength = "length"
	MetadataWidth  = "width"
	MetadataHeight = "height"
)

// LineItem is a single cart line as submitted by the storefront.
//
// Quantity may be a number or a numeric string. Metadata values may be
// numbers or numeric strings; anything else counts as absent.
type LineItem struct {
	ID       string         `json:"id" yaml:"id"`
	Title    string         `json:"title,omitempty" yaml:"title,omitempty"`
	Quantity any            `json:"quantity" yaml:"quantity"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// PackRequest is the input of the pack command.
type PackRequest struct {
	Items []LineItem `json:"items" yaml:"items"`
}

// ShippingRatesRequest is the input of the rates and price commands.
type ShippingRatesRequest struct {
	CartID          string         `json:"cart_id,omitempty" yaml:"cart_id,omitempty"`
	Items           []LineItem     `json:"items" yaml:"items"`
	ShippingAddress *model.Address `json:"shipping_address,omitempty" yaml:"shipping_address,omitempty"`
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is match model.ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return model.ErrInvalidInput
}

// ToItems converts line items into packer input.
func ToItems(lines []LineItem) ([]model.Item, error) {
	items := make([]model.Item, len(lines))
	for i, line := range lines {
		item, err := line.ToItem()
		if err != nil {
			if inputErr, ok := err.(*model.InputError); ok {
				return nil, &model.InputError{
					Field:   fmt.Sprintf("items[%d].%s", i, inputErr.Field),
					Message: inputErr.Message,
				}
			}
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

// ToItem converts a single line item.
func (l LineItem) ToItem() (model.Item, error) {
	qty, ok := quantityOf(l.Quantity)
	if !ok {
		return model.Item{}, &model.InputError{Field: "quantity", Message: "must be a non-negative integer"}
	}
	return model.Item{
		ID:              l.ID,
		Title:           l.Title,
		Quantity:        qty,
		UnitWeightGrams: l.metadataNumber(MetadataWeight),
		UnitLengthCm:    l.metadataNumber(MetadataLength),
		UnitWidthCm:     l.metadataNumber(MetadataWidth),
		UnitHeightCm:    l.metadataNumber(MetadataHeight),
	}, nil
}

// ToItems converts the request items.
func (r *PackRequest) ToItems() ([]model.Item, error) {
	return ToItems(r.Items)
}

// ToCart converts the request into the cart rates are computed for.
func (r *ShippingRatesRequest) ToCart() (model.Cart, error) {
	items, err := ToItems(r.Items)
	if err != nil {
		return model.Cart{}, err
	}
	return model.Cart{
		ID:              r.CartID,
		Items:           items,
		ShippingAddress: r.ShippingAddress,
	}, nil
}

func (l LineItem) metadataNumber(key string) float64 {
	if l.Metadata == nil {
		return 0
	}
	v, ok := numberOf(l.Metadata[key])
	if !ok {
		return 0
	}
	return v
}

func quantityOf(v any) (int, bool) {
	f, ok := numberOf(v)
	if !ok || f < 0 || f != math.Trunc(f) || f >= float64(math.MaxInt) {
		return 0, false
	}
	return int(f), true
}

// numberOf accepts the numeric shapes produced by JSON (with UseNumber) and
// YAML decoding, plus numeric strings. Non-finite values are rejected.
func numberOf(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
