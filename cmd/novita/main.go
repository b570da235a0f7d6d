package main

import (
	"os"

	"github.com/spf13/cobra"

	"novita/internal/interfaces/cli/migrate"
	"novita/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "novita",
		Short: "Novita - recovery community platform",
		Long:  `Novita serves the recovery community web platform: blog publishing, comments and likes, and the support ticket desk, with database migration tooling built in.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
