package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/helpline/internal/console"
	"github.com/diogo/helpline/internal/conversation"
)

// errNoReply is returned when the service did not start a conversation
var errNoReply = errors.New("the helpline service did not reply")

func newAskCmd(deps *Dependencies, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message>",
		Short: "Send a single message and print the reply and analysis",
		Long: `Send one message as a new conversation, then print the reply, any resources
the service recommends, and the analysis of the conversation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, deps, flags, strings.Join(args, " "))
		},
	}
}

func runAsk(cmd *cobra.Command, deps *Dependencies, flags *globalFlags, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return errors.New("message cannot be empty")
	}

	env, client, err := connect(deps, flags, true)
	if err != nil {
		return err
	}
	defer env.close(client)

	printer := console.NewPrinter(cmd.OutOrStdout(), getTerminalWidth())
	controller := conversation.New(client, printer,
		conversation.WithLogger(env.logger),
		conversation.WithLocation(deps.Location),
	)

	controller.Submit(cmd.Context(), message)
	controller.Wait()

	// The failure was already printed as the reply
	if controller.ConversationID().IsZero() {
		return errNoReply
	}
	return nil
}
