package model

import "math"

// Item is one cart line item as seen by the packer.
//
// Weight and dimensions are per unit; a zero value means the metadata was absent.
type Item struct {
	ID              string  `json:"id,omitempty" yaml:"id,omitempty"`
	Title           string  `json:"title,omitempty" yaml:"title,omitempty"`
	UnitWeightGrams float64 `json:"unit_weight_grams" yaml:"unit_weight_grams"`
	Quantity        int     `json:"quantity" yaml:"quantity"`
	UnitLengthCm    float64 `json:"unit_length_cm,omitempty" yaml:"unit_length_cm,omitempty"`
	UnitWidthCm     float64 `json:"unit_width_cm,omitempty" yaml:"unit_width_cm,omitempty"`
	UnitHeightCm    float64 `json:"unit_height_cm,omitempty" yaml:"unit_height_cm,omitempty"`
}

// UnitVolume returns the volume of a single unit, or 0 when any dimension is missing.
func (i Item) UnitVolume() float64 {
	if i.UnitLengthCm <= 0 || i.UnitWidthCm <= 0 || i.UnitHeightCm <= 0 {
		return 0
	}
	return i.UnitLengthCm * i.UnitWidthCm * i.UnitHeightCm
}

// Packable reports whether the item takes part in packing at all.
func (i Item) Packable() bool {
	return !math.IsNaN(i.UnitWeightGrams) && i.UnitWeightGrams > 0
}

// Validate checks the caller-supplied fields the packer cannot recover from.
func (i Item) Validate() error {
	if i.Quantity < 0 {
		return &InputError{Field: "quantity", Message: "must be a non-negative integer"}
	}
	return nil
}
