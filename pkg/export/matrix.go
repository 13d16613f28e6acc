package export

import (
	"fmt"
	"math"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"
)

// MetricKind selects which of the three SOV percentages a tabular
// export carries.
type MetricKind string

const (
	MetricOverall MetricKind = "overall"
	MetricAd      MetricKind = "ad"
	MetricOrganic MetricKind = "organic"
)

// ParseMetricKind validates a user-supplied metric name.
func ParseMetricKind(s string) (MetricKind, error) {
	switch MetricKind(s) {
	case MetricOverall, MetricAd, MetricOrganic:
		return MetricKind(s), nil
	case "":
		return MetricOverall, nil
	default:
		return "", fmt.Errorf("unknown metric kind %q", s)
	}
}

// MergeSpan is one horizontal cell merge in the flattened header,
// inclusive on both columns.
type MergeSpan struct {
	Row      int
	StartCol int
	EndCol   int
}

// Matrix is the rectangular form of a pivot: three header rows (month
// labels spanning their slot*brand width, slot labels spanning their
// brand width, brand labels one per leaf column), then one row per
// pivot row with platform and city in the first two columns.
type Matrix struct {
	Cells  [][]any
	Merges []MergeSpan
}

const leadCols = 2 // platform, city

// BuildMatrix flattens a PivotResult into a Matrix for the selected
// metric. Numeric cells are rounded to two decimals; a combination
// absent from a row's data renders as 0.
func BuildMatrix(res *domain.PivotResult, kind MetricKind) (*Matrix, error) {
	if _, err := ParseMetricKind(string(kind)); err != nil {
		return nil, err
	}

	months := res.Headers.Months
	width := leadCols
	for _, m := range months {
		for _, s := range m.Slots {
			width += len(s.Brands)
		}
	}

	monthRow := emptyRow(width)
	slotRow := emptyRow(width)
	brandRow := emptyRow(width)
	brandRow[0] = "Platform"
	brandRow[1] = "City"

	m := &Matrix{}
	col := leadCols
	for _, month := range months {
		monthStart := col
		for _, slot := range month.Slots {
			slotStart := col
			for _, brand := range slot.Brands {
				brandRow[col] = brand
				col++
			}
			// a slot with no display brands occupies no columns
			if col == slotStart {
				continue
			}
			slotRow[slotStart] = slot.Slot
			if col-1 > slotStart {
				m.Merges = append(m.Merges, MergeSpan{Row: 1, StartCol: slotStart, EndCol: col - 1})
			}
		}
		if col == monthStart {
			continue
		}
		monthRow[monthStart] = month.Month
		if col-1 > monthStart {
			m.Merges = append(m.Merges, MergeSpan{Row: 0, StartCol: monthStart, EndCol: col - 1})
		}
	}

	m.Cells = append(m.Cells, monthRow, slotRow, brandRow)

	for _, row := range res.Rows {
		cells := emptyRow(width)
		cells[0] = row.Platform
		cells[1] = row.City
		col = leadCols
		for _, month := range months {
			for _, slot := range month.Slots {
				for _, brand := range slot.Brands {
					cells[col] = round2(metricValue(row.Data, month.Month, slot.Slot, brand, kind))
					col++
				}
			}
		}
		m.Cells = append(m.Cells, cells)
	}

	return m, nil
}

func metricValue(data domain.CellTree, month, slot, brand string, kind MetricKind) float64 {
	slots, ok := data[month]
	if !ok {
		return 0
	}
	brands, ok := slots[slot]
	if !ok {
		return 0
	}
	metrics, ok := brands[brand]
	if !ok {
		return 0
	}
	switch kind {
	case MetricAd:
		return metrics.Ad
	case MetricOrganic:
		return metrics.Organic
	default:
		return metrics.Overall
	}
}

func emptyRow(width int) []any {
	row := make([]any, width)
	for i := range row {
		row[i] = ""
	}
	return row
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
