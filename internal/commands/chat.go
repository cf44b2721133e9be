package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/diogo/helpline/internal/render"
	"github.com/diogo/helpline/internal/tui"
)

func newChatCmd(deps *Dependencies, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat session with the helpline.

The conversation starts with your first message. Press Ctrl+N to start over,
F1 for the list of keys, and Esc or Ctrl+C to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, deps, flags)
		},
	}
}

func runChat(cmd *cobra.Command, deps *Dependencies, flags *globalFlags) error {
	env, client, err := connect(deps, flags, false)
	if err != nil {
		return err
	}
	defer env.close(client)

	env.logger.Info("starting chat", slog.String("base_url", client.BaseURL()))

	return deps.TUI.RunChat(cmd.Context(), client, tui.ChatOptions{
		BaseURL:     client.BaseURL(),
		CopyReplies: env.cfg.CopyToClipboard,
		Markdown:    render.OptionsFromConfig(env.cfg),
		Logger:      env.logger,
	})
}
