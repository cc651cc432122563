package main

import (
	"fmt"
	"os"

	"sistema_mdu/internal/app"
	"sistema_mdu/internal/domain/entities"

	"github.com/spf13/cobra"
)

func newExportCmd(c *cli) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every address, newest first, as JSON, CSV or YAML",
		Long: `Serialises the enderecos collection. When EXPORT_BUCKET is set the file is
also uploaded and its location printed; otherwise it is written to --out or
standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ff, err := entities.ParseFileFormat(format)
			if err != nil {
				return err
			}
			return c.withApp(cmd.Context(), func(a *app.App) error {
				res := a.ImportExport.Export(cmd.Context(), ff)
				if !res.Success {
					return res.Err()
				}
				file := res.Data
				if file.Location != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "uploaded %d addresses to %s\n", file.Count, file.Location)
				}
				if out == "" {
					_, err := cmd.OutOrStdout().Write(file.Content)
					return err
				}
				if err := os.WriteFile(out, file.Content, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d addresses to %s\n", file.Count, out)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json, csv or yaml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}
