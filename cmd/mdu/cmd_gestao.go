package main

import (
	"sistema_mdu/internal/app"
	"sistema_mdu/internal/domain/entities"

	"github.com/spf13/cobra"
)

func newGestaoCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gestao",
		Short: "Read or replace management datasets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print every management category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app.App) error {
				res := a.Management.Get(cmd.Context())
				if err := printJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
				return res.Err()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "set <category> [items...]",
		Short:   "Replace the items of a category",
		Example: "  mdu gestao set cidades Recife Olinda Paulista",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]any, 0, len(args)-1)
			for _, item := range args[1:] {
				items = append(items, item)
			}
			return c.withApp(cmd.Context(), func(a *app.App) error {
				res := a.Management.Save(cmd.Context(), entities.ManagementCategory(args[0]), items)
				if err := printJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
				return res.Err()
			})
		},
	})
	return cmd
}
