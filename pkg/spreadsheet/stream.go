package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// StreamWorkbook is the excelize.StreamWriter backend. Cell writes for a row
// are buffered and emitted as one SetRow call when the row advances, so rows
// must be written in ascending order within a sheet. Writing to an earlier row
// fails with ErrRowRewind.
type StreamWorkbook struct {
	file   *excelize.File
	sheets []*streamSheet
}

func NewStreamWriter() *StreamWorkbook {
	return &StreamWorkbook{file: excelize.NewFile()}
}

func (b *StreamWorkbook) AddSheet(name string) (Sheet, error) {
	if name != defaultSheetName {
		if _, err := b.file.NewSheet(name); err != nil {
			return nil, fmt.Errorf("new sheet %s: %w", name, err)
		}
	}

	sw, err := b.file.NewStreamWriter(name)
	if err != nil {
		return nil, fmt.Errorf("stream writer for %s: %w", name, err)
	}

	sheet := &streamSheet{stream: sw, name: name}
	b.sheets = append(b.sheets, sheet)
	return sheet, nil
}

// Save flushes every sheet's pending row and stream writer, drops the default
// Sheet1 when it was never claimed, and writes the file.
func (b *StreamWorkbook) Save(path string) error {
	claimedDefault := len(b.sheets) == 0
	for _, sheet := range b.sheets {
		if sheet.name == defaultSheetName {
			claimedDefault = true
		}
		if err := sheet.flushRow(); err != nil {
			return err
		}
		if err := sheet.stream.Flush(); err != nil {
			return fmt.Errorf("flush sheet %s: %w", sheet.name, err)
		}
	}

	if !claimedDefault {
		_ = b.file.DeleteSheet(defaultSheetName)
	}

	return b.file.SaveAs(path)
}

type streamSheet struct {
	stream *excelize.StreamWriter
	name   string
	row    int // zero-based row currently being buffered
	values []interface{}
	dirty  bool
}

func (s *streamSheet) WriteString(row, col int, value string) error {
	return s.write(row, col, value)
}

func (s *streamSheet) WriteNumber(row, col int, value float64) error {
	return s.write(row, col, value)
}

func (s *streamSheet) write(row, col int, value interface{}) error {
	if row < s.row {
		return fmt.Errorf("%w: row %d after row %d on sheet %s", ErrRowRewind, row, s.row, s.name)
	}
	if row > s.row {
		if err := s.flushRow(); err != nil {
			return err
		}
		s.row = row
	}

	for len(s.values) <= col {
		s.values = append(s.values, nil)
	}
	s.values[col] = value
	s.dirty = true
	return nil
}

func (s *streamSheet) flushRow() error {
	if !s.dirty {
		return nil
	}

	cell, err := excelize.CoordinatesToCellName(1, s.row+1)
	if err != nil {
		return err
	}
	if err := s.stream.SetRow(cell, s.values); err != nil {
		return fmt.Errorf("set row %d on sheet %s: %w", s.row+1, s.name, err)
	}

	s.values = s.values[:0]
	s.dirty = false
	return nil
}
