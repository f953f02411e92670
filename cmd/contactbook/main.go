package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/contactbook/internal/adapters/logging"
	"github.com/AntonioJCosta/contactbook/internal/adapters/storeconfig"
	"github.com/AntonioJCosta/contactbook/internal/core/ports"
	"github.com/AntonioJCosta/contactbook/internal/core/services/contactbook"
	"github.com/AntonioJCosta/contactbook/internal/handlers/cli"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, newContactBook)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newContactBook(configPath string, verbose bool) (ports.ContactBook, func(), error) {
	logger, err := logging.New(verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing logger: %w", err)
	}
	cleanup := func() { _ = logger.Sync() }

	provider := storeconfig.NewYAMLProvider(configPath)
	book, err := contactbook.FromConfig(provider, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return book, cleanup, nil
}
