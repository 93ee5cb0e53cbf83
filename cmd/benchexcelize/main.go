// Command benchexcelize writes a synthetic workbook through the in-memory
// excelize backend, for timing the full document-model write path.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/locvowork/spreadsheet_benchmark_sample/internal/bench"
	"github.com/locvowork/spreadsheet_benchmark_sample/pkg/spreadsheet"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "benchexcelize [row_max] [col_max] [sheets]",
		Short: "Write a benchmark workbook with the excelize document model",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return bench.Run(context.Background(), "excelize",
				func() spreadsheet.Writer { return spreadsheet.NewExcelizeWriter() },
				"excelize_perf_test.xlsx", args)
		},
		SilenceUsage: true,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
