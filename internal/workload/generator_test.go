package workload

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/spreadsheet_benchmark_sample/internal/config"
	"github.com/locvowork/spreadsheet_benchmark_sample/pkg/spreadsheet"
)

// recordingWorkbook captures every write so tests can inspect the generated
// pattern without going through a real backend.
type recordingWorkbook struct {
	sheets []*recordingSheet
	saved  string
}

type recordingSheet struct {
	name  string
	cells map[[2]int]interface{}
}

func (w *recordingWorkbook) AddSheet(name string) (spreadsheet.Sheet, error) {
	s := &recordingSheet{name: name, cells: make(map[[2]int]interface{})}
	w.sheets = append(w.sheets, s)
	return s, nil
}

func (w *recordingWorkbook) Save(path string) error {
	w.saved = path
	return nil
}

func (s *recordingSheet) WriteString(row, col int, value string) error {
	s.cells[[2]int{row, col}] = value
	return nil
}

func (s *recordingSheet) WriteNumber(row, col int, value float64) error {
	s.cells[[2]int{row, col}] = value
	return nil
}

func TestFillDimensions(t *testing.T) {
	wb := &recordingWorkbook{}
	err := Fill(wb, config.Params{RowMax: 4, ColMax: 5, Sheets: 3})
	require.NoError(t, err)

	require.Len(t, wb.sheets, 3)
	for _, sheet := range wb.sheets {
		assert.Len(t, sheet.cells, 4*5)
	}
}

func TestFillSheetNames(t *testing.T) {
	wb := &recordingWorkbook{}
	require.NoError(t, Fill(wb, config.Params{RowMax: 1, ColMax: 1, Sheets: 2}))

	require.Len(t, wb.sheets, 2)
	assert.Equal(t, "Sheet1", wb.sheets[0].name)
	assert.Equal(t, "Sheet2", wb.sheets[1].name)
}

func TestFillAlternation(t *testing.T) {
	wb := &recordingWorkbook{}
	require.NoError(t, Fill(wb, config.Params{RowMax: 3, ColMax: 4, Sheets: 2}))

	for _, sheet := range wb.sheets {
		for row := 0; row < 3; row++ {
			for col := 0; col < 4; col++ {
				v, ok := sheet.cells[[2]int{row, col}]
				require.True(t, ok, "missing cell (%d,%d) on %s", row, col, sheet.name)
				if col%2 == 0 {
					assert.Equal(t, TextValue, v, "cell (%d,%d)", row, col)
				} else {
					assert.Equal(t, float64(NumberValue), v, "cell (%d,%d)", row, col)
				}
			}
		}
	}
}

func TestFillZeroBoundaries(t *testing.T) {
	wb := &recordingWorkbook{}
	require.NoError(t, Fill(wb, config.Params{RowMax: 0, ColMax: 10, Sheets: 1}))
	require.Len(t, wb.sheets, 1)
	assert.Empty(t, wb.sheets[0].cells)

	wb = &recordingWorkbook{}
	require.NoError(t, Fill(wb, config.Params{RowMax: 10, ColMax: 0, Sheets: 1}))
	require.Len(t, wb.sheets, 1)
	assert.Empty(t, wb.sheets[0].cells)

	wb = &recordingWorkbook{}
	require.NoError(t, Fill(wb, config.Params{RowMax: 10, ColMax: 10, Sheets: 0}))
	assert.Empty(t, wb.sheets)
}

// failingWorkbook fails on AddSheet to check error propagation.
type failingWorkbook struct{ recordingWorkbook }

var errBoom = errors.New("boom")

func (w *failingWorkbook) AddSheet(name string) (spreadsheet.Sheet, error) {
	return nil, errBoom
}

func TestFillPropagatesBackendError(t *testing.T) {
	err := Fill(&failingWorkbook{}, config.Params{RowMax: 1, ColMax: 1, Sheets: 1})
	assert.ErrorIs(t, err, errBoom)
}
