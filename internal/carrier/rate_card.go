package carrier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRateCard is returned for rate cards that cannot price anything.
var ErrInvalidRateCard = errors.New("invalid rate card")

var gramsPerKg = decimal.NewFromInt(1000)

// ServiceRate prices one carrier service level.
type ServiceRate struct {
	Provider      string          `json:"provider" yaml:"provider"`
	ServiceLevel  string          `json:"service_level" yaml:"service_level"`
	BaseAmount    decimal.Decimal `json:"base_amount" yaml:"base_amount"`
	PerKg         decimal.Decimal `json:"per_kg" yaml:"per_kg"`
	EstimatedDays int             `json:"estimated_days,omitempty" yaml:"estimated_days,omitempty"`
	// MaxParcelWeightGrams excludes the service when any parcel is heavier; 0 means no limit.
	MaxParcelWeightGrams float64 `json:"max_parcel_weight_grams,omitempty" yaml:"max_parcel_weight_grams,omitempty"`
}

// RateCard is an offline RateQuoter that prices shipments from a fixed table.
type RateCard struct {
	Currency string        `json:"currency" yaml:"currency"`
	Services []ServiceRate `json:"services" yaml:"services"`
}

// LoadRateCard reads a rate card from a JSON or YAML file.
func LoadRateCard(path string) (*RateCard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate card: %w", err)
	}

	var card RateCard
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &card)
	default:
		err = json.Unmarshal(data, &card)
	}
	if err != nil {
		return nil, fmt.Errorf("parse rate card: %w", err)
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}
	return &card, nil
}

// Validate checks that every service can be priced.
func (c *RateCard) Validate() error {
	if len(c.Services) == 0 {
		return fmt.Errorf("%w: no services", ErrInvalidRateCard)
	}
	for i, s := range c.Services {
		if s.Provider == "" || s.ServiceLevel == "" {
			return fmt.Errorf("%w: services[%d] needs provider and service_level", ErrInvalidRateCard, i)
		}
		if s.BaseAmount.IsNegative() || s.PerKg.IsNegative() {
			return fmt.Errorf("%w: services[%d] has a negative price", ErrInvalidRateCard, i)
		}
	}
	return nil
}

// QuoteRates prices every service able to carry all parcels.
// Amount per parcel is base + per_kg * kg, summed and rounded to cents.
func (c *RateCard) QuoteRates(ctx context.Context, shipment model.ShipmentRequest) ([]model.Rate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(shipment.Parcels) == 0 {
		return []model.Rate{}, nil
	}

	currency := c.Currency
	if currency == "" {
		currency = "USD"
	}

	rates := make([]model.Rate, 0, len(c.Services))
	for _, s := range c.Services {
		amount, ok := s.price(shipment.Parcels)
		if !ok {
			continue
		}
		rates = append(rates, model.Rate{
			ObjectID:      rateObjectID(s),
			Provider:      s.Provider,
			ServiceLevel:  s.ServiceLevel,
			Amount:        amount,
			Currency:      currency,
			EstimatedDays: s.EstimatedDays,
		})
	}
	return rates, nil
}

func (s ServiceRate) price(parcels []model.CarrierParcel) (decimal.Decimal, bool) {
	total := decimal.Zero
	for _, p := range parcels {
		if s.MaxParcelWeightGrams > 0 && p.Weight > s.MaxParcelWeightGrams {
			return decimal.Zero, false
		}
		grams := decimal.NewFromFloat(p.Weight)
		if p.MassUnit != "" && p.MassUnit != model.MassUnitGrams {
			return decimal.Zero, false
		}
		kg := grams.Div(gramsPerKg)
		total = total.Add(s.BaseAmount).Add(s.PerKg.Mul(kg))
	}
	return total.Round(2), true
}

func rateObjectID(s ServiceRate) string {
	id := strings.ToLower(s.Provider + "_" + s.ServiceLevel)
	return strings.ReplaceAll(id, " ", "_")
}
