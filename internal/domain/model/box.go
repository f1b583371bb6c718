// Package model defines the core domain entities for the parcel service.
package model

import "math"

const (
	// GramsPerPound converts box weight limits (pounds) into grams.
	GramsPerPound = 453.6
	// TareWeightGrams is the packaging allowance added to every parcel.
	TareWeightGrams = GramsPerPound
	// MaxBoxWeightGrams caps a parcel (contents + tare) when the box has no limit of its own.
	MaxBoxWeightGrams = 20 * GramsPerPound
	// EffectiveMaxProductWeight is the heaviest contents weight a parcel may hold before tare.
	EffectiveMaxProductWeight = MaxBoxWeightGrams - TareWeightGrams
)

// FallbackBoxID identifies the synthetic box assigned when no catalog box fits.
const FallbackBoxID = "custom"

// BoxDefinition is a stockable shipping box.
//
// WeightLimitLbs of zero means the box has no limit of its own and MaxBoxWeightGrams applies.
type BoxDefinition struct {
	ID             string  `json:"id" yaml:"id"`
	Name           string  `json:"name" yaml:"name" validate:"required"`
	LengthCm       float64 `json:"length" yaml:"length" validate:"gte=0"`
	WidthCm        float64 `json:"width" yaml:"width" validate:"gte=0"`
	HeightCm       float64 `json:"height" yaml:"height" validate:"gte=0"`
	WeightLimitLbs float64 `json:"weight_limit,omitempty" yaml:"weight_limit,omitempty" validate:"gte=0"`
}

// Volume returns the inner volume of the box in cubic centimeters.
func (b BoxDefinition) Volume() float64 {
	return b.LengthCm * b.WidthCm * b.HeightCm
}

// EffectiveWeightLimitGrams returns the maximum gross weight (contents + tare) the box accepts.
// A zero or NaN limit means the global cap.
func (b BoxDefinition) EffectiveWeightLimitGrams() float64 {
	if b.WeightLimitLbs != 0 && !math.IsNaN(b.WeightLimitLbs) {
		return b.WeightLimitLbs * GramsPerPound
	}
	return MaxBoxWeightGrams
}

// Accepts reports whether contents of the given weight and volume fit the box.
func (b BoxDefinition) Accepts(contentsWeightGrams, contentsVolumeCm3 float64) bool {
	if contentsWeightGrams+TareWeightGrams > b.EffectiveWeightLimitGrams() {
		return false
	}
	return contentsVolumeCm3 <= b.Volume()
}

// IsFallback reports whether this is the synthetic custom box.
func (b BoxDefinition) IsFallback() bool {
	return b.ID == FallbackBoxID
}

// FallbackBox returns the box used when no catalog entry satisfies a parcel.
// Its constraints are never checked against the parcel it is assigned to.
func FallbackBox() BoxDefinition {
	return BoxDefinition{
		ID:             FallbackBoxID,
		Name:           "Custom Box",
		LengthCm:       30,
		WidthCm:        20,
		HeightCm:       10,
		WeightLimitLbs: 20,
	}
}
