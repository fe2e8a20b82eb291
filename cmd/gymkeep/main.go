package main

import (
	"os"

	"github.com/spf13/cobra"

	"gymkeep/internal/interfaces/cli/migrate"
	"gymkeep/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gymkeep",
		Short: "Gymkeep - gym management service",
		Long:  `Gymkeep is a gym management service with role-based accounts, membership plans, subscriptions and a weekly class schedule.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
