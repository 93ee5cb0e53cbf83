// Command benchstream writes a synthetic workbook through the excelize
// StreamWriter backend, for timing the forward-only streaming write path.
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
		Use:   "benchstream [row_max] [col_max] [sheets]",
		Short: "Write a benchmark workbook with the excelize stream writer",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return bench.Run(context.Background(), "stream",
				func() spreadsheet.Writer { return spreadsheet.NewStreamWriter() },
				"stream_perf_test.xlsx", args)
		},
		SilenceUsage: true,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
