package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shelfmates/shelfmates/internal/router"
	"github.com/shelfmates/shelfmates/internal/setup"
	"github.com/shelfmates/shelfmates/shared/config"
	"github.com/shelfmates/shelfmates/shared/logger"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to initialize dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	srv := &http.Server{
		Addr:         ":" + cfg.Public.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Public.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Public.Server.WriteTimeout.Std(),
		IdleTimeout:  cfg.Public.Server.IdleTimeout.Std(),
	}

	go func() {
		logger.Log.Info("starting server", "port", cfg.Public.Server.Port, "backend", cfg.Public.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Public.Server.ShutdownTimeout.Std())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
	}
}
