package sov

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"
)

func TestRankCities_ByReferenceBrandRecentSov(t *testing.T) {
	// Mumbai: BIN holds 40% of the Jan'24 morning market,
	// Delhi: 25%. Mumbai must rank first.
	recs := []domain.NormalizedRecord{
		rec("Swiggy", "Mumbai", "Jan'24", "Morning SOV", "BIN", 40, 0, 40),
		rec("Swiggy", "Mumbai", "Jan'24", "Morning SOV", "Britannia", 60, 0, 60),
		rec("Swiggy", "Delhi", "Jan'24", "Morning SOV", "BIN", 25, 0, 25),
		rec("Swiggy", "Delhi", "Jan'24", "Morning SOV", "Britannia", 75, 0, 75),
	}
	agg := NewAggregator()
	agg.AddAll(recs)
	dims := NewResolver(DefaultTables()).Resolve(recs)

	ranked := RankCities(agg, recs, dims, "BIN")
	assert.Equal(t, []domain.CityKey{
		{Platform: "Swiggy", City: "Mumbai"},
		{Platform: "Swiggy", City: "Delhi"},
	}, ranked)
}

func TestRankCities_OnlyLatestMonthCounts(t *testing.T) {
	// Delhi dominates Jan but Mumbai dominates Feb; Feb decides.
	recs := []domain.NormalizedRecord{
		rec("Swiggy", "Delhi", "Jan'24", "Morning SOV", "BIN", 90, 0, 90),
		rec("Swiggy", "Delhi", "Jan'24", "Morning SOV", "Britannia", 10, 0, 10),
		rec("Swiggy", "Mumbai", "Jan'24", "Morning SOV", "BIN", 10, 0, 10),
		rec("Swiggy", "Mumbai", "Jan'24", "Morning SOV", "Britannia", 90, 0, 90),
		rec("Swiggy", "Delhi", "Feb'24", "Morning SOV", "BIN", 10, 0, 10),
		rec("Swiggy", "Delhi", "Feb'24", "Morning SOV", "Britannia", 90, 0, 90),
		rec("Swiggy", "Mumbai", "Feb'24", "Morning SOV", "BIN", 90, 0, 90),
		rec("Swiggy", "Mumbai", "Feb'24", "Morning SOV", "Britannia", 10, 0, 10),
	}
	agg := NewAggregator()
	agg.AddAll(recs)
	dims := NewResolver(DefaultTables()).Resolve(recs)

	ranked := RankCities(agg, recs, dims, "BIN")
	assert.Equal(t, "Mumbai", ranked[0].City)
}

func TestRankCities_AlphabeticalFallback(t *testing.T) {
	// Reference brand absent everywhere: every score is zero and
	// cities fall back to alphabetical order.
	recs := []domain.NormalizedRecord{
		rec("Swiggy", "Pune", "Jan'24", "Morning SOV", "Britannia", 10, 0, 10),
		rec("Swiggy", "Delhi", "Jan'24", "Morning SOV", "Britannia", 10, 0, 10),
		rec("Blinkit", "Mumbai", "Jan'24", "Morning SOV", "Britannia", 10, 0, 10),
	}
	agg := NewAggregator()
	agg.AddAll(recs)
	dims := NewResolver(DefaultTables()).Resolve(recs)

	ranked := RankCities(agg, recs, dims, "BIN")
	assert.Equal(t, []domain.CityKey{
		{Platform: "Blinkit", City: "Mumbai"},
		{Platform: "Swiggy", City: "Delhi"},
		{Platform: "Swiggy", City: "Pune"},
	}, ranked)
}

func TestRankCities_PlatformsAlphabetical(t *testing.T) {
	recs := []domain.NormalizedRecord{
		rec("Zepto", "Mumbai", "Jan'24", "Morning SOV", "BIN", 90, 0, 90),
		rec("Blinkit", "Delhi", "Jan'24", "Morning SOV", "BIN", 10, 0, 10),
	}
	agg := NewAggregator()
	agg.AddAll(recs)
	dims := NewResolver(DefaultTables()).Resolve(recs)

	ranked := RankCities(agg, recs, dims, "BIN")
	assert.Equal(t, "Blinkit", ranked[0].Platform)
	assert.Equal(t, "Zepto", ranked[1].Platform)
}
