package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/helpline/internal/console"
	"github.com/diogo/helpline/internal/present"
)

func newResourcesCmd(deps *Dependencies, flags *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "resources",
		Short: "List support resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, client, err := connect(deps, flags, true)
			if err != nil {
				return err
			}
			defer env.close(client)

			spin := startSpinner("Loading resources")
			resources, err := client.FetchResources(cmd.Context())
			if err != nil {
				spin.stopWithError()
				return fmt.Errorf("failed to load resources: %w", err)
			}
			spin.stopWithSuccess(fmt.Sprintf("%d resources", len(resources)))

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), resources)
			}

			console.NewPrinter(cmd.OutOrStdout(), getTerminalWidth()).
				SetResources(present.FormatResources(resources))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the resources as JSON")
	return cmd
}
