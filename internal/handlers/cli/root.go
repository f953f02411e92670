package cli

import (
	"fmt"

	"github.com/AntonioJCosta/contactbook/internal/core/ports"
	"github.com/spf13/cobra"
)

// BookFactory builds the contact book for a session from the --config and
// --verbose flags. The returned cleanup func runs when the session ends.
type BookFactory func(configPath string, verbose bool) (book ports.ContactBook, cleanup func(), err error)

func NewRootCommand(version string, newBook BookFactory) *cobra.Command {
	var configPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "contactbook",
		Short: "contactbook is an interactive, in-memory contact book.",
		Long: `contactbook lets you add, remove, list and search contacts for the
duration of a session. Every operation is applied to each configured store.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if newBook == nil && cmd.Name() == "contactbook" {
				return fmt.Errorf("contact book factory not initialized for command %s", cmd.Name())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			book, cleanup, err := newBook(configPath, verbose)
			if err != nil {
				return fmt.Errorf("could not start contact book: %w", err)
			}
			if cleanup != nil {
				defer cleanup()
			}
			return newShell(cmd.InOrStdin(), cmd.OutOrStdout(), book).run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML file declaring the contact stores and their seed contacts.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr.")

	rootCmd.AddCommand(NewStrategiesCommand())

	return rootCmd
}
