package app

import (
	"context"
	"errors"
	"fmt"

	"sistema_mdu/internal/adapter/persistence/docstore"
	"sistema_mdu/internal/config"
	"sistema_mdu/internal/infrastructure/database"
	"sistema_mdu/internal/infrastructure/identity"
	"sistema_mdu/internal/infrastructure/storage"
	"sistema_mdu/internal/logging"
	"sistema_mdu/internal/metrics"
	"sistema_mdu/internal/usecase"
	"sistema_mdu/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// collections lists every collection the services read or write.
var collections = []string{
	usecase.AddressCollection,
	usecase.UsersCollection,
	usecase.ManagementCollection,
	identity.AccountsCollection,
}

// TableNames returns the DynamoDB table backing each collection.
func TableNames(prefix string) []string {
	tables := make([]string, 0, len(collections))
	for _, c := range collections {
		tables = append(tables, prefix+c)
	}
	return tables
}

// App holds the wired services shared by the HTTP API and the mdu CLI, and
// releases their resources on Close.
type App struct {
	Config  config.Config
	Logger  *zap.Logger
	Metrics *metrics.Recorder
	Store   interfaces.IDocumentStore

	Auth         *usecase.AuthUseCase
	Addresses    *usecase.AddressUseCase
	Management   *usecase.ManagementDataUseCase
	Stats        *usecase.StatsUseCase
	ImportExport *usecase.ImportExportUseCase

	closers []func() error
}

// Open connects the configured document store and builds every service on
// top of it.
func Open(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	log = logging.OrNop(log)
	a := &App{Config: cfg, Logger: log, Metrics: metrics.NewRecorder()}

	store, err := a.openStore(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Store = store

	provider, err := identity.NewProvider(store, cfg.Auth, log.Named("identity"))
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("identity provider: %w", err)
	}

	var exports interfaces.IObjectStorage
	if cfg.Export.Bucket != "" {
		awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("aws config: %w", err)
		}
		s3, err := storage.NewS3Exporter(awsCfg, cfg.Export, nil)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("export storage: %w", err)
		}
		exports = s3
		log.Info("exports uploaded to object storage", zap.String("bucket", cfg.Export.Bucket))
	}

	opts := []usecase.Option{usecase.WithLogger(log), usecase.WithMetrics(a.Metrics)}
	a.Auth = usecase.NewAuthUseCase(provider, store, opts...)
	a.Addresses = usecase.NewAddressUseCase(store, opts...)
	a.Management = usecase.NewManagementDataUseCase(store, opts...)
	a.Stats = usecase.NewStatsUseCase(a.Addresses, opts...)
	a.ImportExport = usecase.NewImportExportUseCase(a.Addresses, exports, opts...)
	return a, nil
}

func (a *App) openStore(ctx context.Context) (interfaces.IDocumentStore, error) {
	cfg := a.Config
	clock := docstore.NewClock()

	switch cfg.Store.Driver {
	case config.DriverMemory:
		a.Logger.Warn("using in-memory document store; data is lost on exit")
		return docstore.NewMemoryStore(clock), nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		store, err := docstore.NewSQLiteStore(ctx, db, clock)
		if err != nil {
			return nil, err
		}
		a.Logger.Info("using sqlite document store", zap.String("path", cfg.Store.SQLitePath))
		return store, nil

	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
		store := docstore.NewDynamoStore(ddb, cfg.AWS.TablePrefix, clock)
		if cfg.AWS.AutoCreate {
			if err := database.EnsureTables(ctx, ddb, TableNames(cfg.AWS.TablePrefix), a.Logger); err != nil {
				return nil, err
			}
		}
		a.Logger.Info("using dynamodb document store",
			zap.String("region", cfg.AWS.Region),
			zap.String("table_prefix", cfg.AWS.TablePrefix))
		return store, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// Close releases the store connections. It is safe to call more than once.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
