package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sistema_mdu/internal/app"
	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase"

	"github.com/spf13/cobra"
)

func newImportCmd(c *cli) *cobra.Command {
	var (
		format string
		report bool
	)
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add every record of a JSON, CSV or YAML file to enderecos",
		Long: `Reads a file of address records and adds each one to the enderecos
collection. Records are independent: a failed record is logged and skipped.

The format defaults to the file extension. Use "-" to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(path), ".")
			}
			ff, err := entities.ParseFileFormat(format)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				in = f
			}
			records, err := usecase.DecodeRecords(ff, in)
			if err != nil {
				return err
			}

			return c.withApp(cmd.Context(), func(a *app.App) error {
				if report {
					res := a.ImportExport.ImportReport(cmd.Context(), records)
					if err := printJSON(cmd.OutOrStdout(), res); err != nil {
						return err
					}
					return res.Err()
				}
				res := a.ImportExport.ImportBatch(cmd.Context(), records)
				if !res.Success {
					return res.Err()
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d records\n", res.Data, len(records))
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "json, csv or yaml (default: file extension)")
	cmd.Flags().BoolVar(&report, "report", false, "print per-record outcomes as JSON")
	return cmd
}
