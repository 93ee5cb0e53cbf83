// Package bench wires configuration, workload generation, and a spreadsheet
// backend into the one-shot run every benchmark binary performs.
package bench

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/locvowork/spreadsheet_benchmark_sample/internal/config"
	"github.com/locvowork/spreadsheet_benchmark_sample/internal/logger"
	"github.com/locvowork/spreadsheet_benchmark_sample/internal/workload"
	"github.com/locvowork/spreadsheet_benchmark_sample/pkg/spreadsheet"
)

// Run executes one benchmark pass: resolve the workload parameters, populate a
// fresh workbook from newWriter, and save it as outFile under OUT_DIR. Any
// failure is returned unwrapped of retries or cleanup; the harness is a
// one-shot tool.
func Run(ctx context.Context, backend string, newWriter func() spreadsheet.Writer, outFile string, args []string) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("load env config: %w", err)
	}
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)

	params := config.DefaultParams()
	if preset := config.DefaultEnvConfig.BENCH_PRESET_FILE; preset != "" {
		p, err := config.LoadPresetFile(preset)
		if err != nil {
			return err
		}
		params = p
		logger.InfoLog(ctx, "loaded workload preset from %s", preset)
	}

	params, err := params.WithArgs(args)
	if err != nil {
		return err
	}

	path := filepath.Join(config.DefaultEnvConfig.OUT_DIR, outFile)
	logger.InfoLog(ctx, "%s: writing %d sheet(s) of %dx%d to %s",
		backend, params.Sheets, params.RowMax, params.ColMax, path)

	wb := newWriter()
	start := time.Now()

	if err := workload.Fill(wb, params); err != nil {
		return fmt.Errorf("populate workbook: %w", err)
	}
	if err := wb.Save(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	logger.InfoLog(ctx, "%s: done in %v", backend, time.Since(start))
	return nil
}
