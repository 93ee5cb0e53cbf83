package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelizeWorkbook is the in-memory excelize backend. Every cell write lands
// in the excelize document model; nothing touches disk until Save.
type ExcelizeWorkbook struct {
	file       *excelize.File
	sheetCount int
}

func NewExcelizeWriter() *ExcelizeWorkbook {
	return &ExcelizeWorkbook{file: excelize.NewFile()}
}

// AddSheet appends a sheet. The first sheet claims the default Sheet1 (renaming
// it if needed) so the workbook ends up with exactly the sheets added.
func (b *ExcelizeWorkbook) AddSheet(name string) (Sheet, error) {
	if b.sheetCount == 0 {
		if name != defaultSheetName {
			if err := b.file.SetSheetName(defaultSheetName, name); err != nil {
				return nil, fmt.Errorf("rename default sheet: %w", err)
			}
		}
	} else {
		if _, err := b.file.NewSheet(name); err != nil {
			return nil, fmt.Errorf("new sheet %s: %w", name, err)
		}
	}
	b.sheetCount++
	return &excelizeSheet{file: b.file, name: name}, nil
}

func (b *ExcelizeWorkbook) Save(path string) error {
	return b.file.SaveAs(path)
}

type excelizeSheet struct {
	file *excelize.File
	name string
}

func (s *excelizeSheet) WriteString(row, col int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return s.file.SetCellStr(s.name, cell, value)
}

func (s *excelizeSheet) WriteNumber(row, col int, value float64) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return s.file.SetCellFloat(s.name, cell, value, -1, 64)
}
