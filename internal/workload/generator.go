// Package workload generates the synthetic spreadsheet content every
// benchmark variant writes, so the per-library binaries differ only in the
// backend they plug in.
package workload

import (
	"fmt"

	"github.com/locvowork/spreadsheet_benchmark_sample/internal/config"
	"github.com/locvowork/spreadsheet_benchmark_sample/pkg/spreadsheet"
)

const (
	// TextValue fills every even (zero-based) column.
	TextValue = "Foo"
	// NumberValue fills every odd (zero-based) column.
	NumberValue = 12345
)

// SheetName returns the display name of the i-th (zero-based) sheet.
func SheetName(i int) string {
	return fmt.Sprintf("Sheet%d", i+1)
}

// Fill populates wb with p.Sheets sheets of p.RowMax x p.ColMax cells,
// alternating TextValue and NumberValue by column parity. Zero or negative
// counts write nothing. Errors from the backend propagate immediately.
func Fill(wb spreadsheet.Writer, p config.Params) error {
	for s := 0; s < p.Sheets; s++ {
		sheet, err := wb.AddSheet(SheetName(s))
		if err != nil {
			return fmt.Errorf("add sheet %d: %w", s+1, err)
		}

		for row := 0; row < p.RowMax; row++ {
			for col := 0; col < p.ColMax; col++ {
				if col%2 == 0 {
					err = sheet.WriteString(row, col, TextValue)
				} else {
					err = sheet.WriteNumber(row, col, NumberValue)
				}
				if err != nil {
					return fmt.Errorf("write cell (%d,%d) on %s: %w", row, col, SheetName(s), err)
				}
			}
		}
	}
	return nil
}
