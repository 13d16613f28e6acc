package sov

import "time"

// Tables bundles the fixed lookup data the pipeline depends on. They
// are configuration, not logic: tests and the config file can swap
// them without touching any transform.
type Tables struct {
	// BrandSynonyms maps raw brand names to their canonical code.
	// Unmapped brands pass through unchanged.
	BrandSynonyms map[string]string
	// SlotOrder is the fixed display priority for slots. Slots outside
	// this list still count toward group totals but get no column.
	SlotOrder []string
	// DisplayBrands is the ordered allow-list of brands shown as pivot
	// columns.
	DisplayBrands []string
	// ReferenceBrand is the canonical brand used to rank cities by
	// recent performance.
	ReferenceBrand string
	// MonthIndex maps lowercase 3-letter month prefixes to their
	// calendar index, used to sort month labels chronologically.
	MonthIndex map[string]time.Month
}

// DefaultTables returns the production lookup data for the bread SOV
// report.
func DefaultTables() Tables {
	return Tables{
		BrandSynonyms: map[string]string{
			"Modern":       "BIN",
			"Baker's Loaf": "BIN",
			"Harvest Gold": "BIN",
		},
		SlotOrder: []string{"Morning SOV", "Evening SOV"},
		DisplayBrands: []string{
			"BIN",
			"Britannia",
			"English Oven",
			"Bonn",
			"Kitty Bread",
		},
		ReferenceBrand: "BIN",
		MonthIndex: map[string]time.Month{
			"jan": time.January, "feb": time.February, "mar": time.March,
			"apr": time.April, "may": time.May, "jun": time.June,
			"jul": time.July, "aug": time.August, "sep": time.September,
			"oct": time.October, "nov": time.November, "dec": time.December,
		},
	}
}

// CanonicalBrand applies the synonym table to a raw brand name.
func (t Tables) CanonicalBrand(raw string) string {
	if c, ok := t.BrandSynonyms[raw]; ok {
		return c
	}
	return raw
}
