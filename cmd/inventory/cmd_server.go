package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/config"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/internal/kernel"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/internal/server"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/database"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/logger"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/migration"
)

// inventory serve
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run"},
	Short:   "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		defer logger.Shutdown()

		if uri := config.LogMongoURI(); uri != "" {
			if err := logger.AttachMongo(uri, config.LogMongoDB(), config.LogMongoCollection()); err != nil {
				logger.Warn("mongo log sink disabled", "error", err)
			}
		}

		if err := database.Connect(); err != nil {
			logger.Error("database unavailable", "driver", config.DatabaseDriver(), "error", err)
			return err
		}
		defer database.Close()

		if config.AutoMigrate() {
			if err := migration.New(database.DB).Run(); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}

		return server.Start(kernel.NewHTTPKernel(database.DB).Handler())
	},
}

// inventory route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		routes := kernel.NewHTTPKernel(nil, kernel.WithoutRateLimit()).Router().Routes()
		if len(routes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No named routes registered.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range routes {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
