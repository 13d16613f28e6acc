package sov

import "github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"

// SovFor computes a brand's three share percentages within one group.
// A group total of zero (including a group that never occurred) yields
// zeroes for that metric rather than a division fault.
func SovFor(agg *Aggregator, key domain.GroupKey, brand string) domain.SovMetrics {
	sums := agg.BrandSums(key, brand)
	total := agg.GroupTotal(key)
	return domain.SovMetrics{
		Overall: pct(sums.Total, total.Total),
		Ad:      pct(sums.Ad, total.Ad),
		Organic: pct(sums.Organic, total.Organic),
	}
}

// BuildCellTree computes the full month -> slot -> brand metrics tree
// for one (platform, city) pair over the resolved dimensions. Groups
// with no underlying records produce all-zero entries, not gaps.
func BuildCellTree(agg *Aggregator, city domain.CityKey, dims domain.Dimensions) domain.CellTree {
	tree := make(domain.CellTree, len(dims.Months))
	for _, month := range dims.Months {
		slotTree := make(map[string]map[string]domain.SovMetrics, len(dims.Slots))
		for _, slot := range dims.Slots {
			key := domain.GroupKey{Platform: city.Platform, City: city.City, Month: month, Slot: slot}
			brandTree := make(map[string]domain.SovMetrics, len(dims.Brands))
			for _, brand := range dims.Brands {
				brandTree[brand] = SovFor(agg, key, brand)
			}
			slotTree[slot] = brandTree
		}
		tree[month] = slotTree
	}
	return tree
}

func pct(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}
