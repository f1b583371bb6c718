package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Carrier request units.
const (
	DistanceUnitCm = "cm"
	MassUnitGrams  = "g"
)

// Address is a customer shipping address as stored on the cart.
type Address struct {
	FirstName   string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Address1    string `json:"address_1,omitempty" yaml:"address_1,omitempty"`
	Address2    string `json:"address_2,omitempty" yaml:"address_2,omitempty"`
	City        string `json:"city,omitempty" yaml:"city,omitempty"`
	Province    string `json:"province,omitempty" yaml:"province,omitempty"`
	PostalCode  string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	CountryCode string `json:"country_code,omitempty" yaml:"country_code,omitempty"`
}

// FullName joins first and last name the way carriers expect a recipient name.
func (a Address) FullName() string {
	return a.FirstName + " " + a.LastName
}

// CarrierAddress is an address in the carrier aggregator's shape.
type CarrierAddress struct {
	Name     string `json:"name" yaml:"name"`
	Street1  string `json:"street1" yaml:"street1"`
	Street2  string `json:"street2,omitempty" yaml:"street2,omitempty"`
	City     string `json:"city" yaml:"city"`
	State    string `json:"state" yaml:"state"`
	Zip      string `json:"zip" yaml:"zip"`
	Country  string `json:"country" yaml:"country"`
	Validate bool   `json:"validate,omitempty" yaml:"validate,omitempty"`
}

// NormalizedProvince returns the province in ISO 3166-2 form for US
// addresses given a bare two-letter state code ("wa" becomes "us-wa").
// Other provinces are returned unchanged.
func (a Address) NormalizedProvince() string {
	if !strings.EqualFold(a.CountryCode, "us") {
		return a.Province
	}
	province := strings.ToLower(strings.TrimSpace(a.Province))
	if len(province) != 2 {
		return a.Province
	}
	return "us-" + province
}

// ToCarrierAddress maps a cart address onto a carrier recipient address.
func (a Address) ToCarrierAddress() CarrierAddress {
	return CarrierAddress{
		Name:     a.FullName(),
		Street1:  a.Address1,
		Street2:  a.Address2,
		City:     a.City,
		State:    a.NormalizedProvince(),
		Zip:      a.PostalCode,
		Country:  a.CountryCode,
		Validate: true,
	}
}

// CarrierParcel is a parcel in the carrier aggregator's shape.
type CarrierParcel struct {
	Length       float64 `json:"length" yaml:"length"`
	Width        float64 `json:"width" yaml:"width"`
	Height       float64 `json:"height" yaml:"height"`
	DistanceUnit string  `json:"distance_unit" yaml:"distance_unit"`
	Weight       float64 `json:"weight" yaml:"weight"`
	MassUnit     string  `json:"mass_unit" yaml:"mass_unit"`
}

// ToCarrierParcel maps a packed parcel onto a carrier rate-request parcel.
func (p Parcel) ToCarrierParcel() CarrierParcel {
	return CarrierParcel{
		Length:       p.Box.LengthCm,
		Width:        p.Box.WidthCm,
		Height:       p.Box.HeightCm,
		DistanceUnit: DistanceUnitCm,
		Weight:       p.ShippingWeightGrams(),
		MassUnit:     MassUnitGrams,
	}
}

// ShipmentRequest is what a rate quoter receives.
type ShipmentRequest struct {
	AddressFrom CarrierAddress  `json:"address_from" yaml:"address_from"`
	AddressTo   CarrierAddress  `json:"address_to" yaml:"address_to"`
	Parcels     []CarrierParcel `json:"parcels" yaml:"parcels"`
}

// Rate is a single carrier offer.
type Rate struct {
	ObjectID      string          `json:"object_id,omitempty" yaml:"object_id,omitempty"`
	Provider      string          `json:"provider" yaml:"provider"`
	ServiceLevel  string          `json:"service_level" yaml:"service_level"`
	Amount        decimal.Decimal `json:"amount" yaml:"amount"`
	Currency      string          `json:"currency" yaml:"currency"`
	EstimatedDays int             `json:"estimated_days,omitempty" yaml:"estimated_days,omitempty"`
}

// FulfillmentOption is a shipping option offered at checkout.
type FulfillmentOption struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// OptionPrice is the price of a fulfillment option in minor currency units.
type OptionPrice struct {
	Price        int64 `json:"price" yaml:"price"`
	IsCalculated bool  `json:"is_calculated_price" yaml:"is_calculated_price"`
}

// Cart is the checkout context rates are computed for.
type Cart struct {
	ID              string
	Items           []Item
	ShippingAddress *Address
}
