package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"
)

func TestWriteRawCSV(t *testing.T) {
	records := []domain.RawRecord{
		{Platform: "Swiggy", City: "Mumbai", Category: "Bread", Brand: "Modern", Month: "Jan-24", Slot: "Morning_Slot", Total: "100", Ad: "40", Organic: "60"},
		{Platform: "Swiggy", City: "Delhi", Category: "Bread", Brand: "Britannia", MonthSlot: "Jan-24_Evening", Total: "50", Ad: "n/a", Organic: ""},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRawCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, domain.RawFieldNames(), rows[0])
	// values pass through untouched, including unparsable counters
	assert.Equal(t, []string{"Swiggy", "Mumbai", "Bread", "Modern", "Jan-24", "Morning_Slot", "", "100", "40", "60"}, rows[1])
	assert.Equal(t, []string{"Swiggy", "Delhi", "Bread", "Britannia", "", "", "Jan-24_Evening", "50", "n/a", ""}, rows[2])
}

func TestWriteRawCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRawCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.RawFieldNames(), rows[0])
}
