package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"sistema_mdu/internal/app"
	"sistema_mdu/internal/config"
	"sistema_mdu/internal/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli carries what the subcommands share once the root pre-run has loaded
// the configuration.
type cli struct {
	cfg      config.Config
	log      *zap.Logger
	logLevel string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "mdu",
		Short:        "Maintenance tasks for the Sistema MDU document store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if c.logLevel != "" {
				cfg.LogLevel = c.logLevel
			}
			log, err := logging.New(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.cfg, c.log = cfg, log.Named("cli")
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(
		newImportCmd(c),
		newExportCmd(c),
		newStatsCmd(c),
		newGestaoCmd(c),
		newBootstrapCmd(c),
	)
	return root
}

// withApp opens the configured services for the duration of fn.
func (c *cli) withApp(ctx context.Context, fn func(a *app.App) error) error {
	a, err := app.Open(ctx, c.cfg, c.log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			c.log.Warn("close application", zap.Error(err))
		}
	}()
	return fn(a)
}

// printJSON writes v as indented JSON, the same envelope the API serves.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
