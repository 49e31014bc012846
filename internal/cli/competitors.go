package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/SirClappington/competitor-watch/internal/models"
	"github.com/SirClappington/competitor-watch/internal/services"
	"github.com/spf13/cobra"
)

var (
	flagYes           bool
	flagAddSuggestion bool
)

func init() {
	deleteCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Delete without asking for confirmation")
	suggestCmd.Flags().BoolVar(&flagAddSuggestion, "add", false, "Track every suggested competitor")

	rootCmd.AddCommand(listCmd, addCmd, deleteCmd, suggestCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked competitors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := services.NewCompetitorService(current.client, current.logger)
		return svc.Refresh(cmd.Context(), newTerminalView(cmd.OutOrStdout()))
	},
}

var addCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Start tracking a competitor URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := services.NewCompetitorService(current.client, current.logger)
		if !svc.Add(cmd.Context(), newTerminalView(cmd.OutOrStdout()), args[0]) {
			return fmt.Errorf("competitor url is empty")
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Stop tracking a competitor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := services.NewCompetitorService(current.client, current.logger)
		confirm := terminalConfirmer(os.Stdin, cmd.ErrOrStderr(), flagYes)
		if !svc.Delete(cmd.Context(), newTerminalView(cmd.OutOrStdout()), models.CompetitorID(args[0]), confirm) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
		}
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <your-url>",
	Short: "Suggest competitors for your own site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := services.NewCompetitorService(current.client, current.logger)
		view := newTerminalView(cmd.OutOrStdout())
		if !svc.Suggest(cmd.Context(), view, args[0]) {
			return fmt.Errorf("your url is empty")
		}
		if flagAddSuggestion {
			return addAllSuggestions(cmd.Context(), svc, view)
		}
		return nil
	},
}

// addAllSuggestions tracks every listed suggestion and prints the resulting
// list once at the end.
func addAllSuggestions(ctx context.Context, svc *services.CompetitorService, view *terminalView) error {
	quiet := &listlessView{terminalView: view}
	for _, u := range view.Suggestions() {
		svc.AddSuggestion(ctx, quiet, u)
	}
	return svc.Refresh(ctx, view)
}

// listlessView drops list renders so a batch of adds does not reprint the table.
type listlessView struct {
	*terminalView
}

func (v *listlessView) RenderCompetitors([]models.Competitor) {}
