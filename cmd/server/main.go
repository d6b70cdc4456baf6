package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/bistro-boss-server/config"
	"github.com/shashiranjanraj/bistro-boss-server/database/seeders"
	"github.com/shashiranjanraj/bistro-boss-server/internal/server"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/database"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:   "bistro-boss-server",
		Short: "Restaurant ordering backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run()
		},
	}

	root.AddCommand(serveCmd(), seedCmd(), routeListCmd())

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample menu and review data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			db, err := database.Connect(ctx)
			if err != nil {
				return fmt.Errorf("connect mongo: %w", err)
			}
			defer db.Disconnect()

			return seeders.Run(ctx, db.DB)
		},
	}
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "Print the registered route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tNAME")
			for _, ri := range server.RouteTable() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
			}
			return w.Flush()
		},
	}
}
