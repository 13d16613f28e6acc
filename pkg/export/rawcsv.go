package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"
)

// WriteRawCSV dumps the raw record sequence as received, one record
// per line with a header row of the field names in declared order.
func WriteRawCSV(w io.Writer, records []domain.RawRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(domain.RawFieldNames()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(r.Fields()); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
