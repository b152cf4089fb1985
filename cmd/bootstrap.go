package cmd

import (
	"context"
	"fmt"

	"feather/core/blob"
	"feather/core/config"
	"feather/core/database"
	"feather/core/fetch"
	"feather/core/logger"
	"feather/core/snapshot"
	"feather/core/storage"
	"feather/feature/exchange"
	"feather/feature/pricing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles the dependencies shared by every command.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	store   blob.Store
	pricing *pricing.Service
}

// bootstrap loads configuration and wires the pricing pipeline. The database is optional.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
		logg.Info("Connected to history database", zap.String("driver", cfg.Database.Driver))
	}

	var client storage.Client
	if cfg.Cache.Driver == blob.DriverS3 {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	store, err := blob.New(ctx, cfg.Cache, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache store: %w", err)
	}

	fetcher := fetch.NewClientFromConfig(cfg.Fetch,
		fetch.WithLogger(logg),
		fetch.WithSecrets(cfg.Sources.ExchangeToken),
	)

	formats, err := exchange.DefaultFormats()
	if err != nil {
		return nil, fmt.Errorf("failed to load currency formats: %w", err)
	}

	builder := pricing.NewBuilder(cfg.Sources, store, fetcher, formats, logg)
	holder := snapshot.NewHolder(builder.Build)

	return &runtime{
		cfg:     cfg,
		logger:  logg,
		db:      db,
		store:   store,
		pricing: pricing.NewService(holder, cfg.Server.Currency(), logg),
	}, nil
}
