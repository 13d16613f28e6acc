package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// WriteXLSX renders a Matrix to a single-sheet workbook, applying the
// header merge spans.
func WriteXLSX(w io.Writer, m *Matrix) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range m.Cells {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i, err)
		}
		if err := f.SetSheetRow(defaultSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	for _, span := range m.Merges {
		start, err := excelize.CoordinatesToCellName(span.StartCol+1, span.Row+1)
		if err != nil {
			return fmt.Errorf("failed to address merge start: %w", err)
		}
		end, err := excelize.CoordinatesToCellName(span.EndCol+1, span.Row+1)
		if err != nil {
			return fmt.Errorf("failed to address merge end: %w", err)
		}
		if err := f.MergeCell(defaultSheet, start, end); err != nil {
			return fmt.Errorf("failed to merge %s:%s: %w", start, end, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
