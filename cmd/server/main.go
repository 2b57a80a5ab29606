// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stokpintar/backend-go/internal/api"
	"github.com/stokpintar/backend-go/internal/cache"
	"github.com/stokpintar/backend-go/internal/config"
	"github.com/stokpintar/backend-go/internal/inventory"
	"github.com/stokpintar/backend-go/internal/seed"
	"github.com/stokpintar/backend-go/internal/service"
	"github.com/stokpintar/backend-go/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.Setup(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	store := inventory.NewStore()
	if cfg.App.SeedDemo {
		products, sales := seed.Demo(cfg.App.DemoSeed)
		store.Restore(products, sales)
		logger.Log.Info().
			Int("products", len(products)).
			Int("sales", len(sales)).
			Msg("loaded demo dataset")
	}

	dashboardCache, err := cache.NewDashboardCache(cfg.Cache)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to initialize dashboard cache")
	}

	inventorySvc := service.NewInventoryService(store, dashboardCache)

	router := api.NewRouter(inventorySvc, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Log.Info().Msg("server exiting")
}
