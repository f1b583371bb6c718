package service

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/guttosm/parcel-service/internal/metrics"
	"github.com/guttosm/parcel-service/internal/service/cache"
	"github.com/rs/zerolog/log"
)

// ParcelPacker defines the interface for turning line items into parcels.
type ParcelPacker interface {
	Pack(items []model.Item, catalog []model.BoxDefinition) ([]model.Parcel, error)
	// InvalidateCache clears cached plans (useful when the box catalog changes)
	InvalidateCache()
}

// Option configures a ParcelPackerService.
type Option func(*ParcelPackerService)

// ParcelPackerService implements ParcelPacker on top of PackItems, adding
// plan caching, metrics and logging.
type ParcelPackerService struct {
	cache cache.Cache
}

// NewParcelPackerService creates a new ParcelPackerService with the given options.
func NewParcelPackerService(opts ...Option) *ParcelPackerService {
	s := &ParcelPackerService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables plan caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *ParcelPackerService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *ParcelPackerService) {
		s.cache = c
	}
}

// Pack partitions items into parcels and assigns each parcel a box.
func (s *ParcelPackerService) Pack(items []model.Item, catalog []model.BoxDefinition) ([]model.Parcel, error) {
	start := time.Now()
	planID := uuid.NewString()

	var key uint64
	if s.cache != nil {
		key = Fingerprint(items, catalog)
		if parcels, ok := s.cache.Get(key); ok {
			log.Debug().Str("plan_id", planID).Int("parcels", len(parcels)).Msg("Packing plan served from cache")
			metrics.RecordPack(time.Since(start), "cached")
			return model.CloneParcels(parcels), nil
		}
	}

	parcels, err := PackItems(items, catalog)
	if err != nil {
		metrics.RecordPack(time.Since(start), "invalid")
		return nil, err
	}

	fallbacks := 0
	for _, p := range parcels {
		if p.Box.IsFallback() {
			fallbacks++
		}
	}
	metrics.RecordParcels(len(parcels), fallbacks)
	metrics.RecordPack(time.Since(start), "success")

	log.Debug().
		Str("plan_id", planID).
		Int("items", len(items)).
		Int("catalog_size", len(catalog)).
		Int("parcels", len(parcels)).
		Int("fallback_boxes", fallbacks).
		Msg("Packing plan computed")

	if s.cache != nil {
		s.cache.Set(key, model.CloneParcels(parcels))
	}

	return parcels, nil
}

// InvalidateCache clears the plan cache.
func (s *ParcelPackerService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// CacheMetrics reports plan cache metrics. ok is false when the cache is
// disabled or does not track metrics.
func (s *ParcelPackerService) CacheMetrics() (m cache.Metrics, ok bool) {
	withMetrics, ok := s.cache.(cache.CacheWithMetrics)
	if !ok {
		return cache.Metrics{}, false
	}
	return withMetrics.Metrics(), true
}

// Close stops the plan cache's background cleanup.
func (s *ParcelPackerService) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// openParcel accumulates contents until it is closed into a Parcel.
type openParcel struct {
	weight float64
	volume float64
	items  []model.PackedItem
}

func (o *openParcel) add(item model.Item, qty int, unitWeight, unitVolume float64) {
	w := unitWeight * float64(qty)
	o.weight += w
	o.volume += unitVolume * float64(qty)
	o.items = append(o.items, model.PackedItem{Item: item, PackedQuantity: qty, WeightGrams: w})
}

func (o *openParcel) empty() bool {
	return len(o.items) == 0
}

// PackItems partitions items into parcels using a single-pass greedy
// weight-first bin fill. A closed parcel is never reopened.
//
// Items with a non-positive unit weight are skipped. A unit heavier than
// EffectiveMaxProductWeight is shipped alone in its own parcel. Parcels are
// returned in the order they were closed.
func PackItems(items []model.Item, catalog []model.BoxDefinition) ([]model.Parcel, error) {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, &model.InputError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "must be a non-negative integer",
			}
		}
	}

	boxes := sortByVolume(catalog)
	parcels := make([]model.Parcel, 0)
	open := &openParcel{}

	closeOpen := func() {
		if open.empty() {
			return
		}
		parcels = append(parcels, model.Parcel{
			Box:              selectFromSorted(open.weight, open.volume, boxes),
			GrossWeightGrams: open.weight,
			VolumeCm3:        open.volume,
			Items:            open.items,
		})
		open = &openParcel{}
	}

	for _, item := range items {
		if !item.Packable() {
			continue
		}
		unitWeight := item.UnitWeightGrams
		unitVolume := item.UnitVolume()

		for remaining := item.Quantity; remaining > 0; {
			if open.weight+unitWeight > model.EffectiveMaxProductWeight {
				closeOpen()
			}

			fit := unitsThatFit(open.weight, unitWeight)
			if fit == 0 && !open.empty() {
				closeOpen()
				fit = unitsThatFit(0, unitWeight)
			}
			if fit == 0 {
				// a single unit exceeds the cap on its own
				single := &openParcel{}
				single.add(item, 1, unitWeight, unitVolume)
				parcels = append(parcels, model.Parcel{
					Box:              selectFromSorted(single.weight, single.volume, boxes),
					GrossWeightGrams: single.weight,
					VolumeCm3:        single.volume,
					Items:            single.items,
				})
				remaining--
				continue
			}

			qty := min(remaining, fit)
			open.add(item, qty, unitWeight, unitVolume)
			remaining -= qty
		}
	}
	closeOpen()

	return parcels, nil
}

// unitsThatFit returns how many units of unitWeight still fit under the cap.
func unitsThatFit(currentWeight, unitWeight float64) int {
	capacity := model.EffectiveMaxProductWeight - currentWeight
	if capacity <= 0 {
		return 0
	}
	fit := math.Floor(capacity / unitWeight)
	if fit > math.MaxInt32 {
		return math.MaxInt32
	}
	n := int(fit)
	// floor of a rounded quotient can overshoot by one
	for n > 0 && currentWeight+unitWeight*float64(n) > model.EffectiveMaxProductWeight {
		n--
	}
	return n
}

// SelectBox returns the smallest catalog box (by volume, ties in catalog order)
// accepting the given contents, or the fallback box when none does.
func SelectBox(totalWeight, totalVolume float64, catalog []model.BoxDefinition) model.BoxDefinition {
	return selectFromSorted(totalWeight, totalVolume, sortByVolume(catalog))
}

func selectFromSorted(totalWeight, totalVolume float64, sorted []model.BoxDefinition) model.BoxDefinition {
	for _, box := range sorted {
		if box.Accepts(totalWeight, totalVolume) {
			return box
		}
	}
	return model.FallbackBox()
}

// sortByVolume returns a copy of catalog stably sorted by ascending volume.
func sortByVolume(catalog []model.BoxDefinition) []model.BoxDefinition {
	sorted := slices.Clone(catalog)
	slices.SortStableFunc(sorted, func(a, b model.BoxDefinition) int {
		return cmp.Compare(a.Volume(), b.Volume())
	})
	return sorted
}
