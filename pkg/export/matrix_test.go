package export

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"
	"github.com/Keshav-GC/SOV-MTD-Report/pkg/services/sov"
)

func samplePivot(t *testing.T) *domain.PivotResult {
	t.Helper()
	raw := []domain.RawRecord{
		{Platform: "Swiggy", City: "Mumbai", Month: "Jan-24", Slot: "Morning_Slot", Category: "Bread", Brand: "Modern", Total: "100", Ad: "40", Organic: "60"},
		{Platform: "Swiggy", City: "Mumbai", Month: "Jan-24", Slot: "Morning_Slot", Category: "Bread", Brand: "Britannia", Total: "100", Ad: "10", Organic: "90"},
		{Platform: "Swiggy", City: "Mumbai", Month: "Jan-24", Slot: "Evening_Slot", Category: "Bread", Brand: "Modern", Total: "30", Ad: "10", Organic: "20"},
		{Platform: "Swiggy", City: "Mumbai", Month: "Feb-24", Slot: "Morning_Slot", Category: "Bread", Brand: "Britannia", Total: "60", Ad: "20", Organic: "40"},
		{Platform: "Swiggy", City: "Delhi", Month: "Jan-24", Slot: "Morning_Slot", Category: "Bread", Brand: "Modern", Total: "90", Ad: "30", Organic: "60"},
	}

	result, err := sov.NewEngine(sov.DefaultTables()).BuildPivot(context.Background(), raw, []string{"Bread"})
	require.NoError(t, err)
	return result
}

func TestBuildMatrix_Shape(t *testing.T) {
	result := samplePivot(t)
	m, err := BuildMatrix(result, MetricOverall)
	require.NoError(t, err)

	// 2 months x 2 slots x 2 brands = 8 leaf columns + platform + city
	width := 10
	require.GreaterOrEqual(t, len(m.Cells), 3)
	for _, row := range m.Cells {
		assert.Len(t, row, width)
	}

	assert.Equal(t, "Jan'24", m.Cells[0][2])
	assert.Equal(t, "Feb'24", m.Cells[0][6])
	assert.Equal(t, "Morning SOV", m.Cells[1][2])
	assert.Equal(t, "Evening SOV", m.Cells[1][4])
	assert.Equal(t, "Platform", m.Cells[2][0])
	assert.Equal(t, "City", m.Cells[2][1])
	assert.Equal(t, "BIN", m.Cells[2][2])
	assert.Equal(t, "Britannia", m.Cells[2][3])

	// month spans cover slot*brand width, slot spans cover brand width
	assert.Contains(t, m.Merges, MergeSpan{Row: 0, StartCol: 2, EndCol: 5})
	assert.Contains(t, m.Merges, MergeSpan{Row: 0, StartCol: 6, EndCol: 9})
	assert.Contains(t, m.Merges, MergeSpan{Row: 1, StartCol: 2, EndCol: 3})
	assert.Contains(t, m.Merges, MergeSpan{Row: 1, StartCol: 4, EndCol: 5})
}

func TestBuildMatrix_Values(t *testing.T) {
	result := samplePivot(t)
	m, err := BuildMatrix(result, MetricAd)
	require.NoError(t, err)

	// Neither city has reference-brand data in Feb'24, so the rows
	// fall back to alphabetical order: Delhi first. In the Jan morning
	// slot Delhi's ad market is all BIN, Mumbai's splits 40/10.
	require.Len(t, m.Cells, 5)
	assert.Equal(t, "Delhi", m.Cells[3][1])
	assert.Equal(t, 100.0, m.Cells[3][2])
	assert.Equal(t, 0.0, m.Cells[3][3])
	assert.Equal(t, "Mumbai", m.Cells[4][1])
	assert.Equal(t, 80.0, m.Cells[4][2])
	assert.Equal(t, 20.0, m.Cells[4][3])
}

func TestBuildMatrix_UnknownMetric(t *testing.T) {
	result := samplePivot(t)
	_, err := BuildMatrix(result, MetricKind("median"))
	assert.Error(t, err)
}

func TestBuildMatrix_RoundTrip(t *testing.T) {
	result := samplePivot(t)
	m, err := BuildMatrix(result, MetricOverall)
	require.NoError(t, err)

	// Reconstruct (city, month, slot, brand) -> value from the flat
	// matrix by carrying the month and slot labels across their spans.
	type leaf struct{ city, month, slot, brand string }
	got := make(map[leaf]float64)

	month, slot := "", ""
	months := make([]string, len(m.Cells[0]))
	slots := make([]string, len(m.Cells[1]))
	for col := 2; col < len(m.Cells[0]); col++ {
		if s, _ := m.Cells[0][col].(string); s != "" {
			month = s
		}
		if s, _ := m.Cells[1][col].(string); s != "" {
			slot = s
		}
		months[col], slots[col] = month, slot
	}

	for _, row := range m.Cells[3:] {
		city := row[1].(string)
		for col := 2; col < len(row); col++ {
			brand := m.Cells[2][col].(string)
			got[leaf{city, months[col], slots[col], brand}] = row[col].(float64)
		}
	}

	for _, row := range result.Rows {
		for monthLabel, slotTree := range row.Data {
			for slotLabel, brandTree := range slotTree {
				for brand, metrics := range brandTree {
					want := round2(metrics.Overall)
					assert.Equal(t, want, got[leaf{row.City, monthLabel, slotLabel, brand}],
						"cell %s/%s/%s/%s", row.City, monthLabel, slotLabel, brand)
				}
			}
		}
	}
}

func TestBuildMatrix_OnlyUnrecognizedSlots(t *testing.T) {
	// Records whose slot never canonicalizes to a display slot still
	// normalize fine; the month axis resolves but carries no slot
	// columns, so the matrix collapses to the platform/city columns.
	raw := []domain.RawRecord{
		{Platform: "Swiggy", City: "Mumbai", Month: "Jan-24", Slot: "Midnight_Slot", Category: "Bread", Brand: "Modern", Total: "100", Ad: "40", Organic: "60"},
	}
	result, err := sov.NewEngine(sov.DefaultTables()).BuildPivot(context.Background(), raw, nil)
	require.NoError(t, err)
	require.Len(t, result.Headers.Months, 1)
	require.Empty(t, result.Headers.Months[0].Slots)

	m, err := BuildMatrix(result, MetricOverall)
	require.NoError(t, err)

	require.Len(t, m.Cells, 4)
	for _, row := range m.Cells {
		assert.Len(t, row, 2)
	}
	assert.Empty(t, m.Merges)
	assert.Equal(t, "Mumbai", m.Cells[3][1])
}

func TestBuildMatrix_OnlyOffListBrands(t *testing.T) {
	// A feed of brands outside the display allow-list yields months
	// and slots with no brand columns; the slot occupies no width.
	raw := []domain.RawRecord{
		{Platform: "Swiggy", City: "Mumbai", Month: "Jan-24", Slot: "Morning_Slot", Category: "Bread", Brand: "Corner Shop", Total: "100", Ad: "40", Organic: "60"},
	}
	result, err := sov.NewEngine(sov.DefaultTables()).BuildPivot(context.Background(), raw, nil)
	require.NoError(t, err)
	require.Len(t, result.Headers.Months, 1)
	require.Len(t, result.Headers.Months[0].Slots, 1)
	require.Empty(t, result.Headers.Months[0].Slots[0].Brands)

	m, err := BuildMatrix(result, MetricOverall)
	require.NoError(t, err)

	require.Len(t, m.Cells, 4)
	for _, row := range m.Cells {
		assert.Len(t, row, 2)
	}
	assert.Empty(t, m.Merges)
}

func TestBuildMatrix_EmptyResult(t *testing.T) {
	m, err := BuildMatrix(&domain.PivotResult{Rows: []domain.PivotRow{}}, MetricOverall)
	require.NoError(t, err)

	require.Len(t, m.Cells, 3)
	assert.Empty(t, m.Merges)
	for _, row := range m.Cells {
		assert.Len(t, row, 2)
	}
}
