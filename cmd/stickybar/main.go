package main

import (
	"os"

	"github.com/spf13/cobra"

	"stickybar/internal/interfaces/cli/migrate"
	"stickybar/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stickybar",
		Short: "Sticky review bar backend",
		Long:  `Backend service for the sticky review bar widget, including the storefront widget API and the store owner configuration API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
