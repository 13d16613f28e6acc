package domain

// RawRecord is one row of the impression feed as received from the
// source, all fields still text. Two schema variants exist: older
// exports carry separate Month and Slot columns, newer ones a single
// combined MonthSlot column. A record carrying neither is malformed.
type RawRecord struct {
	Platform  string `json:"platform"`
	City      string `json:"city"`
	Category  string `json:"category"`
	Brand     string `json:"brand"`
	Month     string `json:"month,omitempty"`
	Slot      string `json:"slot,omitempty"`
	MonthSlot string `json:"month_slot,omitempty"`
	Total     string `json:"total"`
	Ad        string `json:"ad"`
	Organic   string `json:"organic"`
}

// RawFieldNames lists the RawRecord fields in declared order, used as
// the header row of the raw delimited export.
func RawFieldNames() []string {
	return []string{
		"platform", "city", "category", "brand",
		"month", "slot", "month_slot", "total", "ad", "organic",
	}
}

// Fields returns the record's values in the same order as RawFieldNames.
func (r RawRecord) Fields() []string {
	return []string{
		r.Platform, r.City, r.Category, r.Brand,
		r.Month, r.Slot, r.MonthSlot, r.Total, r.Ad, r.Organic,
	}
}

// HasSplitSchema reports whether the record uses the separate
// month/slot column variant.
func (r RawRecord) HasSplitSchema() bool {
	return r.Month != "" || r.Slot != ""
}

// HasCombinedSchema reports whether the record uses the combined
// month_slot column variant.
func (r RawRecord) HasCombinedSchema() bool {
	return r.MonthSlot != ""
}

// NormalizedRecord is the canonical tuple every raw variant is reduced
// to before aggregation. Month is formatted like "Jan'24", Slot like
// "Morning SOV", and the counters are parsed non-negative integers.
type NormalizedRecord struct {
	Platform string
	City     string
	Category string
	Month    string
	Slot     string
	Brand    string
	Counts   Impressions
}

// Impressions carries the three impression counters tracked per record
// and per aggregation bucket.
type Impressions struct {
	Total   int
	Ad      int
	Organic int
}

// Add accumulates o into m.
func (m *Impressions) Add(o Impressions) {
	m.Total += o.Total
	m.Ad += o.Ad
	m.Organic += o.Organic
}

// GroupKey identifies one aggregation bucket.
type GroupKey struct {
	Platform string
	City     string
	Month    string
	Slot     string
}

// CityKey identifies one pivot row.
type CityKey struct {
	Platform string
	City     string
}

// GroupAggregate holds per-brand sums for a group plus the group-wide
// total over every brand observed in that group. The total is the SOV
// denominator, so it must include brands that never appear as display
// columns.
type GroupAggregate struct {
	Brands map[string]Impressions
	Total  Impressions
}
