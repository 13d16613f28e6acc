package sov

import "github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"

// BuildHeaders expands the resolved dimensions into the nested pivot
// header. The same brand list repeats under every slot of every month.
func BuildHeaders(dims domain.Dimensions) domain.HeaderTree {
	tree := domain.HeaderTree{Months: make([]domain.MonthHeader, 0, len(dims.Months))}
	for _, month := range dims.Months {
		mh := domain.MonthHeader{Month: month, Slots: make([]domain.SlotHeader, 0, len(dims.Slots))}
		for _, slot := range dims.Slots {
			brands := make([]string, len(dims.Brands))
			copy(brands, dims.Brands)
			mh.Slots = append(mh.Slots, domain.SlotHeader{Slot: slot, Brands: brands})
		}
		tree.Months = append(tree.Months, mh)
	}
	return tree
}

// BuildRows materializes one PivotRow per ranked city, marking the
// first row of each platform block.
func BuildRows(agg *Aggregator, ranked []domain.CityKey, dims domain.Dimensions) []domain.PivotRow {
	rows := make([]domain.PivotRow, 0, len(ranked))
	for i, city := range ranked {
		rows = append(rows, domain.PivotRow{
			Platform:        city.Platform,
			City:            city.City,
			FirstInPlatform: i == 0 || ranked[i-1].Platform != city.Platform,
			Data:            BuildCellTree(agg, city, dims),
		})
	}
	return rows
}
