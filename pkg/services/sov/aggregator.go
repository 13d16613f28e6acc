package sov

import "github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"

// Aggregator accumulates normalized records into per-group buckets.
// Every record contributes to both its brand's sums and the group-wide
// total, whether or not the brand ever becomes a display column: the
// group total is the SOV denominator and must reflect the full market.
type Aggregator struct {
	groups map[domain.GroupKey]*domain.GroupAggregate
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{groups: make(map[domain.GroupKey]*domain.GroupAggregate)}
}

// Add folds one record into its group bucket.
func (a *Aggregator) Add(rec domain.NormalizedRecord) {
	key := domain.GroupKey{
		Platform: rec.Platform,
		City:     rec.City,
		Month:    rec.Month,
		Slot:     rec.Slot,
	}
	g, ok := a.groups[key]
	if !ok {
		g = &domain.GroupAggregate{Brands: make(map[string]domain.Impressions)}
		a.groups[key] = g
	}

	sums := g.Brands[rec.Brand]
	sums.Add(rec.Counts)
	g.Brands[rec.Brand] = sums
	g.Total.Add(rec.Counts)
}

// AddAll folds a batch of records.
func (a *Aggregator) AddAll(recs []domain.NormalizedRecord) {
	for _, rec := range recs {
		a.Add(rec)
	}
}

// Group returns the aggregate for a key, or false if the key never
// occurred in the input.
func (a *Aggregator) Group(key domain.GroupKey) (*domain.GroupAggregate, bool) {
	g, ok := a.groups[key]
	return g, ok
}

// BrandSums returns a brand's accumulated counters within a group,
// zero-valued when either the group or the brand is absent.
func (a *Aggregator) BrandSums(key domain.GroupKey, brand string) domain.Impressions {
	if g, ok := a.groups[key]; ok {
		return g.Brands[brand]
	}
	return domain.Impressions{}
}

// GroupTotal returns the group-wide counters for a key, zero-valued
// when the key is absent.
func (a *Aggregator) GroupTotal(key domain.GroupKey) domain.Impressions {
	if g, ok := a.groups[key]; ok {
		return g.Total
	}
	return domain.Impressions{}
}

// Len reports the number of distinct groups seen.
func (a *Aggregator) Len() int {
	return len(a.groups)
}
