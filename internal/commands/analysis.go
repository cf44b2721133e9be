package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/helpline/internal/console"
	"github.com/diogo/helpline/internal/models"
	"github.com/diogo/helpline/internal/present"
)

func newAnalysisCmd(deps *Dependencies, flags *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analysis <conversation-id>",
		Short: "Show the risk analysis of a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := models.ParseConversationID(args[0])
			if err != nil {
				return err
			}

			env, client, err := connect(deps, flags, true)
			if err != nil {
				return err
			}
			defer env.close(client)

			spin := startSpinner("Loading analysis")
			analysis, err := client.FetchAnalysis(cmd.Context(), id)
			if err != nil {
				spin.stopWithError()
				return fmt.Errorf("failed to load analysis: %w", err)
			}
			if analysis == nil {
				spin.stopWithError()
				return fmt.Errorf("no analysis for conversation %s", id)
			}
			spin.stopWithSuccess("Analysis loaded")

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), analysis)
			}

			view := present.FormatAnalysis(*analysis, deps.Location)
			console.NewPrinter(cmd.OutOrStdout(), getTerminalWidth()).
				SetPanel(present.AnalysisPanel(view))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the analysis as JSON")
	return cmd
}
