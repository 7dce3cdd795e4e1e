package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"campusapi/backend/internal/admin"
	"campusapi/backend/internal/shared"
)

// Standalone reseed utility. Drops every collection and reloads the bundled
// demo fixture, then prints per-collection counts.
func main() {
	log.Println("Starting Database Seeder...")

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

	client, db, err := shared.ConnectMongoDB(&cfg.MongoDB, logger)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer shared.DisconnectMongoDB(client, logger)

	svc := admin.NewService(db, &cfg.MongoDB, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := svc.ResetDemoData(ctx); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	stats, err := svc.CollectionStats(ctx)
	if err != nil {
		logger.Fatal("failed to count documents", zap.Error(err))
	}
	for name, count := range stats {
		logger.Info("seeded collection", zap.String("collection", name), zap.Int64("documents", count))
	}
	logger.Info("seeding complete")
}
