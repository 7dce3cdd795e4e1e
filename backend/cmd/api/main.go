package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"campusapi/backend/internal/academics"
	"campusapi/backend/internal/admin"
	"campusapi/backend/internal/api"
	"campusapi/backend/internal/auth"
	"campusapi/backend/internal/campuslife"
	"campusapi/backend/internal/directory"
	"campusapi/backend/internal/shared"
)

func main() {
	// 1. Configuration
	// LoadEnv warns on a missing file itself; absence is not fatal.
	_ = shared.LoadEnv(".env")

	cfg, err := shared.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := shared.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 2. Database
	client, db, err := shared.ConnectMongoDB(&cfg.MongoDB, logger)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer shared.DisconnectMongoDB(client, logger)

	// 3. Domain Services
	svcs := &api.Services{
		Auth:       auth.NewService(db, &cfg.MongoDB, logger),
		Directory:  directory.NewService(db, &cfg.MongoDB, logger),
		Academics:  academics.NewService(db, &cfg.MongoDB, logger),
		CampusLife: campuslife.NewService(db, &cfg.MongoDB, logger),
		Admin:      admin.NewService(db, &cfg.MongoDB, logger),
	}

	// 4. Router and Server
	router := api.SetupRoutes(cfg, logger, svcs)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("campus API listening", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// 5. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("stopped")
}
