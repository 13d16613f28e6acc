package sov

import (
	"sort"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"
)

// RankCities orders the distinct (platform, city) pairs of the dataset
// for row layout: platforms alphabetically, cities within a platform
// descending by the reference brand's overall SOV summed over the
// resolved slots in the most recent month. Cities tie-break
// alphabetically; a missing reference brand, empty month axis or
// absent data all score zero, so such cities fall back to alphabetical
// order.
func RankCities(agg *Aggregator, recs []domain.NormalizedRecord, dims domain.Dimensions, referenceBrand string) []domain.CityKey {
	seen := make(map[domain.CityKey]struct{})
	cities := make([]domain.CityKey, 0)
	for _, rec := range recs {
		key := domain.CityKey{Platform: rec.Platform, City: rec.City}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cities = append(cities, key)
	}

	scores := make(map[domain.CityKey]float64, len(cities))
	for _, c := range cities {
		scores[c] = recentScore(agg, c, dims, referenceBrand)
	}

	sort.Slice(cities, func(i, j int) bool {
		a, b := cities[i], cities[j]
		if a.Platform != b.Platform {
			return a.Platform < b.Platform
		}
		if scores[a] != scores[b] {
			return scores[a] > scores[b]
		}
		return a.City < b.City
	})
	return cities
}

func recentScore(agg *Aggregator, city domain.CityKey, dims domain.Dimensions, referenceBrand string) float64 {
	if len(dims.Months) == 0 {
		return 0
	}
	if !contains(dims.Brands, referenceBrand) {
		return 0
	}
	latest := dims.Months[len(dims.Months)-1]
	var score float64
	for _, slot := range dims.Slots {
		key := domain.GroupKey{Platform: city.Platform, City: city.City, Month: latest, Slot: slot}
		score += SovFor(agg, key, referenceBrand).Overall
	}
	return score
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
