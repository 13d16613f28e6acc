package domain

// SovMetrics is a brand's share of voice within one group, one
// percentage per impression kind. All values are in [0, 100]; a group
// with a zero total yields zeroes rather than an error.
type SovMetrics struct {
	Overall float64
	Ad      float64
	Organic float64
}

// Dimensions are the ordered display axes resolved from the filtered
// dataset: months chronological, slots in fixed priority order, brands
// in allow-list order.
type Dimensions struct {
	Months []string
	Slots  []string
	Brands []string
}

// SlotHeader is one slot column group nested under a month.
type SlotHeader struct {
	Slot   string
	Brands []string
}

// MonthHeader is one month column group of the pivot header.
type MonthHeader struct {
	Month string
	Slots []SlotHeader
}

// HeaderTree is the nested pivot header. By construction the brand
// list is identical under every slot of every month.
type HeaderTree struct {
	Months []MonthHeader
}

// CellTree is a row's nested value mapping: month -> slot -> brand.
type CellTree map[string]map[string]map[string]SovMetrics

// PivotRow is one (platform, city) row of the report.
// FirstInPlatform marks the first row of each platform block in
// ranked order; it is a rendering hint, not aggregation state.
type PivotRow struct {
	Platform        string
	City            string
	FirstInPlatform bool
	Data            CellTree
}

// PivotResult is the complete share-of-voice pivot.
type PivotResult struct {
	Headers HeaderTree
	Rows    []PivotRow
}
