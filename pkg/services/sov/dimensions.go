package sov

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"
)

// Resolver derives the ordered display dimensions from the normalized
// dataset.
type Resolver struct {
	tables Tables
}

// NewResolver creates a Resolver backed by the given lookup tables.
func NewResolver(tables Tables) *Resolver {
	return &Resolver{tables: tables}
}

// Resolve computes the month, slot and display-brand axes. Months are
// chronological, slots follow the fixed priority order, brands follow
// the allow-list order intersected with what was actually observed.
func (r *Resolver) Resolve(recs []domain.NormalizedRecord) domain.Dimensions {
	months := make(map[string]struct{})
	slots := make(map[string]struct{})
	brands := make(map[string]struct{})
	for _, rec := range recs {
		months[rec.Month] = struct{}{}
		slots[rec.Slot] = struct{}{}
		brands[rec.Brand] = struct{}{}
	}

	dims := domain.Dimensions{
		Months: make([]string, 0, len(months)),
		Slots:  make([]string, 0, len(r.tables.SlotOrder)),
		Brands: make([]string, 0, len(r.tables.DisplayBrands)),
	}

	for m := range months {
		dims.Months = append(dims.Months, m)
	}
	sort.Slice(dims.Months, func(i, j int) bool {
		return r.MonthSortKey(dims.Months[i]) < r.MonthSortKey(dims.Months[j])
	})

	for _, s := range r.tables.SlotOrder {
		if _, ok := slots[s]; ok {
			dims.Slots = append(dims.Slots, s)
		}
	}

	for _, b := range r.tables.DisplayBrands {
		if _, ok := brands[b]; ok {
			dims.Brands = append(dims.Brands, b)
		}
	}

	return dims
}

// MonthSortKey maps a "Jan'24" style label to a comparable ordinal.
// Labels that cannot be parsed sort to the epoch, i.e. before any real
// month.
func (r *Resolver) MonthSortKey(label string) int {
	name, year, ok := splitMonthLabel(label)
	if !ok {
		return 0
	}
	m, ok := r.tables.MonthIndex[name]
	if !ok {
		return 0
	}
	return year*12 + int(m)
}

func splitMonthLabel(label string) (name string, year int, ok bool) {
	parts := strings.SplitN(label, "'", 2)
	if len(parts) != 2 || len(parts[0]) < 3 {
		return "", 0, false
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", 0, false
	}
	if y < 100 {
		y += 2000
	}
	return strings.ToLower(parts[0][:3]), y, true
}
