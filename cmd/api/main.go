package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "sistema_mdu/docs"
	"sistema_mdu/internal/adapter/http/routes"
	"sistema_mdu/internal/app"
	"sistema_mdu/internal/config"
	"sistema_mdu/internal/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Sistema MDU API
// @version         1.0
// @description     Addresses, management datasets and statistics of the MDU dashboard.

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by the id token.

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to start the application", zap.Error(err))
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("close application", zap.Error(err))
		}
	}()

	return routes.Run(ctx, a)
}
