package model

// PackedItem is the fragment of an Item placed in one parcel.
type PackedItem struct {
	Item
	// PackedQuantity is the number of units of Item placed in this parcel.
	PackedQuantity int `json:"packed_quantity" yaml:"packed_quantity"`
	// WeightGrams is the total weight of PackedQuantity units.
	WeightGrams float64 `json:"weight_grams" yaml:"weight_grams"`
}

// VolumeCm3 returns the total volume of the packed units.
func (p PackedItem) VolumeCm3() float64 {
	return p.UnitVolume() * float64(p.PackedQuantity)
}

// Parcel is one physical shipment unit produced by the packer.
type Parcel struct {
	Box BoxDefinition `json:"box" yaml:"box"`
	// GrossWeightGrams is the contents weight only; tare is added when rating.
	GrossWeightGrams float64      `json:"gross_weight_grams" yaml:"gross_weight_grams"`
	VolumeCm3        float64      `json:"volume_cm3" yaml:"volume_cm3"`
	Items            []PackedItem `json:"items" yaml:"items"`
}

// ShippingWeightGrams returns the weight declared to the carrier (contents + tare).
func (p Parcel) ShippingWeightGrams() float64 {
	return p.GrossWeightGrams + TareWeightGrams
}

// UnitCount returns the number of units in the parcel.
func (p Parcel) UnitCount() int {
	n := 0
	for _, it := range p.Items {
		n += it.PackedQuantity
	}
	return n
}

// Clone returns a deep copy of the parcel.
func (p Parcel) Clone() Parcel {
	c := p
	c.Items = make([]PackedItem, len(p.Items))
	copy(c.Items, p.Items)
	return c
}

// CloneParcels deep-copies a parcel sequence.
func CloneParcels(parcels []Parcel) []Parcel {
	if parcels == nil {
		return nil
	}
	out := make([]Parcel, len(parcels))
	for i, p := range parcels {
		out[i] = p.Clone()
	}
	return out
}
