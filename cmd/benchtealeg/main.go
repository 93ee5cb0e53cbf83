// Command benchtealeg writes a synthetic workbook through the tealeg/xlsx
// backend, for timing a second full in-memory writer.
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
		Use:   "benchtealeg [row_max] [col_max] [sheets]",
		Short: "Write a benchmark workbook with tealeg/xlsx",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return bench.Run(context.Background(), "tealeg",
				func() spreadsheet.Writer { return spreadsheet.NewTealegWriter() },
				"tealeg_perf_test.xlsx", args)
		},
		SilenceUsage: true,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
