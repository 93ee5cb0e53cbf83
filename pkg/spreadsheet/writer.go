// Package spreadsheet abstracts the handful of workbook-writing capabilities
// the benchmark harness needs, so that one workload generator can drive any
// backing library. Addressing is zero-based; each backend translates to its
// library's own convention.
package spreadsheet

import "errors"

// Writer builds one workbook consisting of the sheets created with AddSheet,
// then persists it with Save. A Writer is good for a single Save.
type Writer interface {
	AddSheet(name string) (Sheet, error)
	Save(path string) error
}

// Sheet is a 2D grid of cells addressed by zero-based (row, col).
type Sheet interface {
	WriteString(row, col int, value string) error
	WriteNumber(row, col int, value float64) error
}

// ErrRowRewind is returned by streaming backends when a write targets a row
// earlier than the one currently being built.
var ErrRowRewind = errors.New("streaming writer cannot revisit a flushed row")

// defaultSheetName is the sheet excelize workbooks are born with.
const defaultSheetName = "Sheet1"
