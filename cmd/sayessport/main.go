package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Destiny653/sayessport/internal/interfaces/cli/server"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "sayessport",
		Short:   "Next Generation Athlete website",
		Long:    `Serves the Next Generation Athlete marketing and booking site: localized pages, package catalog, and form submission endpoints.`,
		Version: version,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
