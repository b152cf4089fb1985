package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"feather/core/loader"
	"feather/core/logger"
	"feather/core/metrics"
	"feather/core/middleware/auth"
	"feather/core/middleware/rayid"
	"feather/feature/currency"
	"feather/feature/history"
	"feather/feature/integrity"
	"feather/feature/pricing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "feather/docs/swagger"
)

// @title Feather Price API
// @version 1.0
// @description Consolidated item prices and currency conversion.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the price server",
	Long:  `Loads every dataset, builds the price snapshot and starts the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		rt, err := bootstrap(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Warm the snapshot so the first request does not pay for the build
		if snap, err := rt.pricing.Snapshot(ctx); err != nil {
			logg.Warn("Initial snapshot build failed", zap.Error(err))
		} else if snap.Report().Degraded() {
			logg.Warn("Serving a degraded snapshot", zap.Any("report", snap.Report()))
		}

		metrics.Register()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(pricing.NewFeature(rt.pricing))
		mgr.Register(currency.NewFeature(rt.pricing))
		mgr.Register(history.NewFeature(rt.db, rt.pricing, logg))
		mgr.Register(integrity.NewFeature(rt.store, rt.pricing, rt.db, logg))

		// RayID first so every log line carries it
		app.Use(rayid.New())

		app.Use(logger.Requests(logg))

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("address", rt.cfg.Server.Address()))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
