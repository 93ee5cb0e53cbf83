package workload

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/locvowork/spreadsheet_benchmark_sample/internal/config"
	"github.com/locvowork/spreadsheet_benchmark_sample/pkg/spreadsheet"
)

// Benchmarks write a reduced grid per iteration; the full 4000x50 default is
// what the binaries are for.
func benchmarkFill(b *testing.B, newWriter func() spreadsheet.Writer) {
	params := config.Params{RowMax: 200, ColMax: 50, Sheets: 1}
	dir := b.TempDir()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wb := newWriter()
		if err := Fill(wb, params); err != nil {
			b.Fatal(err)
		}
		path := filepath.Join(dir, fmt.Sprintf("bench_%d.xlsx", i))
		if err := wb.Save(path); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFillExcelize(b *testing.B) {
	benchmarkFill(b, func() spreadsheet.Writer { return spreadsheet.NewExcelizeWriter() })
}

func BenchmarkFillStream(b *testing.B) {
	benchmarkFill(b, func() spreadsheet.Writer { return spreadsheet.NewStreamWriter() })
}

func BenchmarkFillTealeg(b *testing.B) {
	benchmarkFill(b, func() spreadsheet.Writer { return spreadsheet.NewTealegWriter() })
}
