package service

import (
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/guttosm/parcel-service/internal/domain/model"
)

// Fingerprint hashes a packing input. Item and catalog order are significant,
// since both affect the resulting plan.
func Fingerprint(items []model.Item, catalog []model.BoxDefinition) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)

	writeFloat := func(f float64) {
		buf = strconv.AppendUint(buf[:0], math.Float64bits(f), 16)
		buf = append(buf, '|')
		_, _ = d.Write(buf)
	}
	writeString := func(s string) {
		buf = strconv.AppendInt(buf[:0], int64(len(s)), 10)
		buf = append(buf, ':')
		_, _ = d.Write(buf)
		_, _ = d.WriteString(s)
	}

	_, _ = d.WriteString("items")
	writeFloat(float64(len(items)))
	for _, it := range items {
		writeString(it.ID)
		writeString(it.Title)
		writeFloat(it.UnitWeightGrams)
		writeFloat(float64(it.Quantity))
		writeFloat(it.UnitLengthCm)
		writeFloat(it.UnitWidthCm)
		writeFloat(it.UnitHeightCm)
	}

	_, _ = d.WriteString("boxes")
	writeFloat(float64(len(catalog)))
	for _, b := range catalog {
		writeString(b.ID)
		writeString(b.Name)
		writeFloat(b.LengthCm)
		writeFloat(b.WidthCm)
		writeFloat(b.HeightCm)
		writeFloat(b.WeightLimitLbs)
	}

	return d.Sum64()
}
