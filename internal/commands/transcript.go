package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/helpline/internal/console"
	"github.com/diogo/helpline/internal/models"
)

func newTranscriptCmd(deps *Dependencies, flags *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "transcript <conversation-id>",
		Short: "Print the messages of a conversation",
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

			spin := startSpinner("Loading conversation")
			transcript, err := client.FetchTranscript(cmd.Context(), id)
			if err != nil {
				spin.stopWithError()
				return fmt.Errorf("failed to load conversation: %w", err)
			}
			spin.stopWithSuccess(fmt.Sprintf("%d messages", len(transcript.Messages)))

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), transcript)
			}

			console.NewPrinter(cmd.OutOrStdout(), getTerminalWidth()).
				PrintTranscript(transcript, deps.Location)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the conversation as JSON")
	return cmd
}
