package main

import (
	"fmt"

	"sistema_mdu/internal/app"
	"sistema_mdu/internal/config"
	"sistema_mdu/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

func newBootstrapCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the DynamoDB tables backing every collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Store.Driver != config.DriverDynamoDB {
				return fmt.Errorf("bootstrap requires STORE_DRIVER=%s, got %q", config.DriverDynamoDB, c.cfg.Store.Driver)
			}
			ddb, err := database.ConnectDynamoDB(cmd.Context(), c.cfg.AWS)
			if err != nil {
				return err
			}
			tables := app.TableNames(c.cfg.AWS.TablePrefix)
			if err := database.EnsureTables(cmd.Context(), ddb, tables, c.log); err != nil {
				return err
			}
			for _, t := range tables {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}
