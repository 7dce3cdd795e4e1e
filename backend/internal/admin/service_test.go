package admin

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"campusapi/backend/internal/shared"
)

func testDB(t *testing.T) (*mongo.Database, *shared.MongoConfig) {
	t.Helper()

	_ = godotenv.Load("../../../.env")
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI not set, skipping MongoDB integration test")
	}

	cfg, err := shared.LoadConfig()
	require.NoError(t, err)

	logger := zap.NewNop()
	client, db, err := shared.ConnectMongoDB(&cfg.MongoDB, logger)
	require.NoError(t, err)
	t.Cleanup(func() { shared.DisconnectMongoDB(client, logger) })

	return db, &cfg.MongoDB
}

func TestResetDemoData_Integration(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())
	ctx := context.Background()

	// Pollute a collection first so the reset provably replaces state.
	users := db.Collection(shared.CollectionUsers)
	_, err := users.InsertOne(ctx, shared.User{
		ID: "test_reset_ghost", Username: "ghost", Password: "x",
		Role: shared.RoleStudent, Name: "Ghost", Email: "ghost@campus.edu",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResetDemoData(ctx))

	count, err := users.CountDocuments(ctx, bson.M{"id": "test_reset_ghost"})
	require.NoError(t, err)
	assert.Zero(t, count)

	stats, err := svc.CollectionStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), stats[shared.CollectionUsers])
	assert.Equal(t, int64(5), stats[shared.CollectionStudents])
	assert.Equal(t, int64(5), stats[shared.CollectionGrades])
	assert.Equal(t, int64(4), stats[shared.CollectionAttendance])
	assert.Equal(t, int64(3), stats[shared.CollectionMaterials])
	assert.Equal(t, int64(4), stats[shared.CollectionLibrary])
	assert.Equal(t, int64(5), stats[shared.CollectionEvents])
	assert.Equal(t, int64(5), stats[shared.CollectionComplaints])
	assert.Equal(t, int64(4), stats[shared.CollectionSchedules])
	assert.Equal(t, int64(3), stats[shared.CollectionNotices])
}

func TestResetDemoData_Repeatable(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.ResetDemoData(ctx))
	require.NoError(t, svc.ResetDemoData(ctx))

	// A second reset does not duplicate documents.
	stats, err := svc.CollectionStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), stats[shared.CollectionUsers])

	var c1 shared.Complaint
	err = db.Collection(shared.CollectionComplaints).FindOne(ctx, bson.M{"id": "C1"}).Decode(&c1)
	require.NoError(t, err)
	assert.Equal(t, 12, c1.Votes)
}
