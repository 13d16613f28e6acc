package sov

import (
	"strconv"
	"strings"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"
)

const (
	unknownMonth = "Unknown"
	unknownSlot  = "Unknown SOV"
	slotSuffix   = " SOV"
)

// Normalizer reduces raw feed rows to canonical records: it reconciles
// the two raw schema variants, consolidates brand synonyms, coerces
// the impression counters and applies the category filter.
type Normalizer struct {
	tables Tables
}

// NewNormalizer creates a Normalizer backed by the given lookup tables.
func NewNormalizer(tables Tables) *Normalizer {
	return &Normalizer{tables: tables}
}

// Normalize converts raw records to canonical ones, keeping only the
// selected categories. An empty selection keeps every category.
// Records carrying neither schema variant are dropped silently.
func (n *Normalizer) Normalize(raw []domain.RawRecord, categories []string) []domain.NormalizedRecord {
	selected := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c != "" {
			selected[c] = struct{}{}
		}
	}

	out := make([]domain.NormalizedRecord, 0, len(raw))
	for _, r := range raw {
		var month, slot string
		switch {
		case r.HasSplitSchema():
			month, slot = normalizeSplit(r.Month, r.Slot)
		case r.HasCombinedSchema():
			month, slot = normalizeCombined(r.MonthSlot)
		default:
			continue
		}

		if len(selected) > 0 {
			if _, ok := selected[r.Category]; !ok {
				continue
			}
		}

		out = append(out, domain.NormalizedRecord{
			Platform: strings.TrimSpace(r.Platform),
			City:     strings.TrimSpace(r.City),
			Category: r.Category,
			Month:    month,
			Slot:     slot,
			Brand:    n.tables.CanonicalBrand(strings.TrimSpace(r.Brand)),
			Counts: domain.Impressions{
				Total:   parseCount(r.Total),
				Ad:      parseCount(r.Ad),
				Organic: parseCount(r.Organic),
			},
		})
	}
	return out
}

// normalizeSplit handles the variant with separate month and slot
// columns, e.g. month "Jan-24", slot "Morning_Slot".
func normalizeSplit(month, slot string) (string, string) {
	return canonMonth(month), canonSlot(slot)
}

// normalizeCombined handles the single "Jan-24_Morning" style column.
func normalizeCombined(monthSlot string) (string, string) {
	parts := strings.SplitN(monthSlot, "_", 2)
	month := canonMonth(parts[0])
	if len(parts) < 2 {
		return month, unknownSlot
	}
	return month, canonSlot(parts[1])
}

// canonMonth turns "Jan-24" into "Jan'24". An empty value becomes the
// Unknown sentinel, which later drops out of the resolved dimensions.
func canonMonth(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return unknownMonth
	}
	return strings.Replace(s, "-", "'", 1)
}

// canonSlot keeps the token before the first underscore or whitespace,
// title-cases it and appends the " SOV" suffix: "Morning_Slot",
// "Morning Slot" and "morning" all become "Morning SOV".
func canonSlot(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "_ \t"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return unknownSlot
	}
	s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	return s + slotSuffix
}

// parseCount coerces a textual counter to a non-negative int. Bad or
// empty input counts as zero, never as an error.
func parseCount(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
