package cli

import (
	"errors"
	"os"
	"os/signal"

	"github.com/SirClappington/competitor-watch/internal/models"
	"github.com/SirClappington/competitor-watch/internal/services"
	"github.com/spf13/cobra"
)

var errScanLost = errors.New("scan stream lost")

func init() {
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan <id>",
	Short: "Run a scan for a competitor and show its report",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	svc := services.NewScanService(current.client, current.logger)
	viewer, err := svc.Run(ctx, models.CompetitorID(args[0]), newTerminalScanView(cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	if log := viewer.Log(); len(log) > 0 && log[len(log)-1].Error {
		return errScanLost
	}
	return nil
}
