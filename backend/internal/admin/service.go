// Package admin implements the destructive demo-data reset and collection
// statistics.
package admin

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"campusapi/backend/internal/seed"
	"campusapi/backend/internal/shared"
)

// resetTimeout bounds the whole delete-then-reseed pass.
const resetTimeout = 30 * time.Second

// Service owns cross-collection maintenance operations.
type Service struct {
	db      *mongo.Database
	timeout time.Duration
	logger  *zap.Logger
}

// NewService creates an admin Service.
func NewService(db *mongo.Database, cfg *shared.MongoConfig, logger *zap.Logger) *Service {
	return &Service{
		db:      db,
		timeout: cfg.QueryTimeout,
		logger:  logger,
	}
}

// ResetDemoData deletes every document in all ten collections, then bulk
// inserts the fixed seed fixture. The pass is always destructive-then-reseed
// and has no rollback: a failure partway leaves the store in a mixed state.
func (s *Service) ResetDemoData(ctx context.Context) error {
	opCtx, cancel := context.WithTimeout(ctx, resetTimeout)
	defer cancel()

	fixture, err := seed.Load()
	if err != nil {
		return err
	}

	for _, cd := range fixture.Ordered() {
		col := s.db.Collection(cd.Collection)

		if _, err := col.DeleteMany(opCtx, bson.M{}); err != nil {
			return fmt.Errorf("failed to clear %s: %w", cd.Collection, err)
		}

		if len(cd.Docs) == 0 {
			continue
		}
		if _, err := col.InsertMany(opCtx, cd.Docs); err != nil {
			return fmt.Errorf("failed to seed %s: %w", cd.Collection, err)
		}

		s.logger.Info("collection reseeded",
			zap.String("collection", cd.Collection),
			zap.Int("documents", len(cd.Docs)))
	}

	return nil
}

// CollectionStats returns the document count per collection for the admin
// dashboard.
func (s *Service) CollectionStats(ctx context.Context) (map[string]int64, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	collections := []string{
		shared.CollectionUsers,
		shared.CollectionStudents,
		shared.CollectionGrades,
		shared.CollectionAttendance,
		shared.CollectionMaterials,
		shared.CollectionLibrary,
		shared.CollectionEvents,
		shared.CollectionComplaints,
		shared.CollectionSchedules,
		shared.CollectionNotices,
	}

	stats := make(map[string]int64, len(collections))
	for _, name := range collections {
		count, err := s.db.Collection(name).CountDocuments(queryCtx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", name, err)
		}
		stats[name] = count
	}

	return stats, nil
}
