package cli

import (
	"fmt"

	"github.com/AntonioJCosta/contactbook/internal/core/matching"
	"github.com/AntonioJCosta/contactbook/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewStrategiesCommand creates the 'strategies' subcommand.
func NewStrategiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the search strategies a store can use.",
		Long:  `Lists the values accepted by the 'match' key of a store in the --config file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.HeaderColor("Search strategies:"))
			for _, name := range matching.Names() {
				fmt.Fprintf(out, "  %-10s %s\n", name, ui.DetailColor(matching.Description(name)))
			}
			return nil
		},
	}
}
