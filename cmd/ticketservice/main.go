// @title Support Ticketing System API
// @version 1.0
// @description Customers file tickets, agents work them, and everyone keeps a comment trail.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Harekrushna7138/ticket-service-backend/internal/interfaces/cli/migrate"
	"github.com/Harekrushna7138/ticket-service-backend/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ticketservice",
		Short: "Support ticketing backend",
		Long:  `ticketservice runs the support ticketing HTTP API and manages its database schema.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
