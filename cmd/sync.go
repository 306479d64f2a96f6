package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	devsync "device-sync/feature/sync"

	"github.com/spf13/cobra"
)

var (
	// Flags for sync command
	dryRunSync  bool
	limitSync   int
	serialsSync []string
	workersSync int
	yesConfirm  bool
)

// syncCmd updates Jamf purchasing fields from ABM.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Update Jamf purchasing fields from ABM",
	Long: `Sync fetches the full ABM device listing, looks up each device in Jamf
by serial number and overwrites its purchasing fields with the values derived
from ABM.

Per-device failures are reported and do not stop the run. Devices missing in
Jamf are counted and skipped.

Examples:
  # Preview what a run would change
  device-sync sync --dry-run

  # Update the first 10 devices (with interactive confirmation)
  device-sync sync --limit 10

  # Update two specific devices, non-interactive
  device-sync sync --serial C02XYZ123 --serial C02ABC456 --yes

  # Full run with 4 concurrent workers
  device-sync sync --workers 4 --yes`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Report what would change without writing to Jamf")
	syncCmd.Flags().IntVar(&limitSync, "limit", 0, "Stop after processing this many devices (0 = no limit)")
	syncCmd.Flags().StringSliceVar(&serialsSync, "serial", nil, "Restrict the run to specific serial numbers (repeatable)")
	syncCmd.Flags().IntVar(&workersSync, "workers", 0, "Concurrent device workers (0 = use configured value)")
	syncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = rt.log.Sync() }()

	if !dryRunSync {
		if !confirmDestructiveAction() {
			rt.log.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
	}

	opts := devsync.Options{
		DryRun:  dryRunSync,
		Limit:   limitSync,
		Serials: serialsSync,
		Workers: resolveWorkers(workersSync, rt.cfg.Sync.Workers),
	}

	outcome, runErr := rt.engine.Sync(ctx, opts)
	if outcome != nil {
		rt.assembler.SyncSummary(outcome, dryRunSync)
	}
	if runErr != nil {
		return fmt.Errorf("sync run aborted: %w", runErr)
	}
	return nil
}

func resolveWorkers(flag, configured int) int {
	if flag > 0 {
		return flag
	}
	return configured
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  This will overwrite purchasing fields in Jamf. Type 'yes' to confirm: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
