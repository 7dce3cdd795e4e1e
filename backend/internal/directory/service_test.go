package directory

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

func TestStudentLifecycle_Integration(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())
	ctx := context.Background()

	student := shared.Student{
		ID: "test_dir_student", Name: "Dir Test", Department: "Physics",
		Year: 2, Semester: 3, Email: "dir@campus.edu", Phone: "555-0100",
	}
	require.NoError(t, svc.CreateStudent(ctx, &student))
	t.Cleanup(func() {
		db.Collection(shared.CollectionStudents).DeleteMany(context.Background(), bson.M{"id": student.ID})
	})

	fetched, err := svc.GetStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics", fetched.Department)

	student.Department = "Astronomy"
	require.NoError(t, svc.UpdateStudent(ctx, student.ID, &student))

	fetched, err = svc.GetStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Astronomy", fetched.Department)
}

func TestGetStudent_Unknown(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())

	_, err := svc.GetStudent(context.Background(), "test_dir_missing")
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
	assert.Equal(t, "Student not found", err.Error())
}

func TestDeleteUser_MissingIDIsNoOp(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())

	assert.NoError(t, svc.DeleteUser(context.Background(), "test_dir_ghost_user"))
}

func TestCreateUser_DuplicateIDsCoexist(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())
	ctx := context.Background()

	user := shared.User{
		ID: "test_dir_dup", Username: "dup_a", Password: "x",
		Role: shared.RoleTeacher, Name: "Dup A", Email: "dup@campus.edu",
	}
	require.NoError(t, svc.CreateUser(ctx, &user))
	user.Username = "dup_b"
	require.NoError(t, svc.CreateUser(ctx, &user))
	t.Cleanup(func() {
		db.Collection(shared.CollectionUsers).DeleteMany(context.Background(), bson.M{"id": user.ID})
	})

	count, err := db.Collection(shared.CollectionUsers).CountDocuments(ctx, bson.M{"id": user.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
