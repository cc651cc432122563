package main

import (
	"sistema_mdu/internal/app"

	"github.com/spf13/cobra"
)

func newStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard statistics envelope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app.App) error {
				res := a.Stats.GetStats(cmd.Context())
				if err := printJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
				return res.Err()
			})
		},
	}
}
