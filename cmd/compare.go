package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"device-sync/feature/report"
	devsync "device-sync/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	outputTable = "table"
	outputCSV   = "csv"

	missingCSVFile     = "missing_devices.csv"
	differencesCSVFile = "purchase_differences.csv"
)

var (
	// Flags for compare command
	showDiff       bool
	showMissing    bool
	showAll        bool
	outputFormat   string
	limitCompare   int
	serialsCompare []string
)

// compareCmd reports drift without writing anything.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Report purchasing drift between ABM and Jamf",
	Long: `Compare fetches the full ABM device listing and checks every device
against Jamf without writing anything. It reports devices whose purchasing
fields have drifted and devices missing from Jamf entirely.

Examples:
  # Show drifted devices (default)
  device-sync compare

  # Show devices missing from Jamf
  device-sync compare --missing

  # Both reports as CSV files for offline analysis
  device-sync compare --all --output csv`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&showDiff, "diff", false, "Report devices with drifted purchasing fields")
	compareCmd.Flags().BoolVar(&showMissing, "missing", false, "Report devices missing from Jamf")
	compareCmd.Flags().BoolVar(&showAll, "all", false, "Report both drifted and missing devices")
	compareCmd.Flags().StringVar(&outputFormat, "output", outputTable, "Output format: table or csv")
	compareCmd.Flags().IntVar(&limitCompare, "limit", 0, "Stop after checking this many devices (0 = no limit)")
	compareCmd.Flags().StringSliceVar(&serialsCompare, "serial", nil, "Restrict the run to specific serial numbers (repeatable)")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if outputFormat != outputTable && outputFormat != outputCSV {
		return fmt.Errorf("unknown output format %q (expected %s or %s)", outputFormat, outputTable, outputCSV)
	}

	// Default to the drift report when no selection flag is given.
	if !showDiff && !showMissing && !showAll {
		showDiff = true
	}
	if showAll {
		showDiff = true
		showMissing = true
	}

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = rt.log.Sync() }()

	comparison, runErr := rt.engine.Compare(ctx, devsync.Options{
		Limit:   limitCompare,
		Serials: serialsCompare,
	})
	if comparison != nil {
		rt.assembler.CompareSummary(comparison)
	}
	if runErr != nil {
		return fmt.Errorf("compare run aborted: %w", runErr)
	}

	if showDiff {
		if err := emitDifferences(rt.log, comparison.Differences); err != nil {
			return err
		}
	}
	if showMissing {
		if err := emitMissing(rt.log, comparison); err != nil {
			return err
		}
	}
	return nil
}

func emitDifferences(l *zap.Logger, diffs []devsync.DeviceDiff) error {
	if len(diffs) == 0 {
		l.Info("No purchasing drift detected")
		return nil
	}
	if outputFormat == outputCSV {
		return writeCSVFile(l, differencesCSVFile, func(f *os.File) error {
			return report.WriteDifferencesCSV(f, diffs)
		})
	}
	return report.RenderDifferencesTable(os.Stdout, diffs)
}

func emitMissing(l *zap.Logger, comparison *devsync.Comparison) error {
	if len(comparison.Missing) == 0 {
		l.Info("No devices missing from Jamf")
		return nil
	}
	if outputFormat == outputCSV {
		return writeCSVFile(l, missingCSVFile, func(f *os.File) error {
			return report.WriteMissingCSV(f, comparison.Missing)
		})
	}
	return report.RenderMissingTable(os.Stdout, comparison.Missing)
}

func writeCSVFile(l *zap.Logger, name string, write func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	l.Info("Report written", zap.String("file", name))
	return nil
}
