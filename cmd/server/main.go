// Package main is the entry point for the Expertos service-order API.
// It serves the open-orders dashboard: business-hours elapsed time per order,
// period header counts, and the thin client/catalog/order record endpoints.
package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lagtech/expertos-api/internal/config"
	"github.com/lagtech/expertos-api/internal/database"
	"github.com/lagtech/expertos-api/internal/modules/catalog"
	"github.com/lagtech/expertos-api/internal/modules/clients"
	"github.com/lagtech/expertos-api/internal/modules/orders"
	"github.com/lagtech/expertos-api/internal/modules/panel"
	"github.com/lagtech/expertos-api/internal/scheduler"
	"github.com/lagtech/expertos-api/internal/server"
	"github.com/lagtech/expertos-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger with config level
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	log.Info().Msg("Starting Expertos API")

	// Build the business calendar; a misconfigured calendar is fatal
	cal, err := cfg.Calendar()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid business calendar configuration")
	}

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	// Apply module schemas (clients and catalog first, orders reference them)
	for _, initSchema := range []func(*sql.DB) error{
		clients.InitSchema,
		catalog.InitSchema,
		orders.InitSchema,
	} {
		if err := initSchema(db.Conn()); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database schema")
		}
	}

	// Repositories and handlers
	clientRepo := clients.NewRepository(db.Conn(), log)
	catalogRepo := catalog.NewRepository(db.Conn(), log)
	orderRepo := orders.NewRepository(db.Conn(), log)

	panelSvc := panel.NewService(orderRepo, cal, log)

	// Initialize scheduler and register maintenance jobs
	sched := scheduler.New(log)
	if err := sched.AddJob("0 30 3 * * *", scheduler.NewMaintenanceJob(db, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register maintenance job")
	}
	sched.Start()
	defer sched.Stop()

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:            cfg.Port,
		Log:             log,
		DB:              db,
		DevMode:         cfg.DevMode,
		ClientHandlers:  clients.NewHandler(clientRepo, log),
		CatalogHandlers: catalog.NewHandler(catalogRepo, log),
		OrderHandlers:   orders.NewHandler(orderRepo, log),
		PanelHandlers:   panel.NewHandler(panelSvc, log),
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
