package spreadsheet

import (
	"fmt"

	"github.com/tealeg/xlsx"
)

// TealegWorkbook is the pure-Go tealeg/xlsx backend. Sheets grow on demand as
// cells are addressed; tealeg uses zero-based coordinates natively.
type TealegWorkbook struct {
	file *xlsx.File
}

func NewTealegWriter() *TealegWorkbook {
	return &TealegWorkbook{file: xlsx.NewFile()}
}

func (b *TealegWorkbook) AddSheet(name string) (Sheet, error) {
	sh, err := b.file.AddSheet(name)
	if err != nil {
		return nil, fmt.Errorf("add sheet %s: %w", name, err)
	}
	return &tealegSheet{sheet: sh}, nil
}

func (b *TealegWorkbook) Save(path string) error {
	return b.file.Save(path)
}

type tealegSheet struct {
	sheet *xlsx.Sheet
}

func (s *tealegSheet) WriteString(row, col int, value string) error {
	s.sheet.Cell(row, col).SetString(value)
	return nil
}

func (s *tealegSheet) WriteNumber(row, col int, value float64) error {
	s.sheet.Cell(row, col).SetFloat(value)
	return nil
}
