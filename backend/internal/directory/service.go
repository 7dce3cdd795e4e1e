// Package directory manages the user account and student profile collections.
package directory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"campusapi/backend/internal/shared"
)

// Service performs document-store operations for users and students.
// Updates and deletes on a missing id are silent no-ops; duplicate ids on
// create are not checked.
type Service struct {
	usersCol    *mongo.Collection
	studentsCol *mongo.Collection
	timeout     time.Duration
	logger      *zap.Logger
}

// NewService creates a directory Service.
func NewService(db *mongo.Database, cfg *shared.MongoConfig, logger *zap.Logger) *Service {
	return &Service{
		usersCol:    db.Collection(shared.CollectionUsers),
		studentsCol: db.Collection(shared.CollectionStudents),
		timeout:     cfg.QueryTimeout,
		logger:      logger,
	}
}

// ============================================================================
// Users
// ============================================================================

// ListUsers returns every user document, capped at the shared list limit.
func (s *Service) ListUsers(ctx context.Context) ([]shared.User, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.usersCol.Find(queryCtx, bson.M{}, options.Find().SetLimit(shared.ListCap))
	if err != nil {
		return nil, err
	}

	users := []shared.User{}
	if err := cursor.All(queryCtx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser inserts the record as-is.
func (s *Service) CreateUser(ctx context.Context, user *shared.User) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.usersCol.InsertOne(queryCtx, user)
	return err
}

// UpdateUser replaces all fields of the document matching id. If no document
// matches, nothing changes and no error is reported.
func (s *Service) UpdateUser(ctx context.Context, id string, user *shared.User) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.usersCol.UpdateOne(queryCtx, bson.M{"id": id}, bson.M{"$set": user})
	return err
}

// DeleteUser removes the matching document if present; an absent id is a
// silent no-op.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.usersCol.DeleteOne(queryCtx, bson.M{"id": id})
	return err
}

// ============================================================================
// Students
// ============================================================================

// ListStudents returns every student document, capped at the shared list limit.
func (s *Service) ListStudents(ctx context.Context) ([]shared.Student, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.studentsCol.Find(queryCtx, bson.M{}, options.Find().SetLimit(shared.ListCap))
	if err != nil {
		return nil, err
	}

	students := []shared.Student{}
	if err := cursor.All(queryCtx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent returns the student with the given id or a NotFound error.
func (s *Service) GetStudent(ctx context.Context, id string) (*shared.Student, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var student shared.Student
	err := s.studentsCol.FindOne(queryCtx, bson.M{"id": id}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, shared.NewNotFound("Student")
		}
		return nil, err
	}
	return &student, nil
}

// CreateStudent inserts the record as-is.
func (s *Service) CreateStudent(ctx context.Context, student *shared.Student) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.studentsCol.InsertOne(queryCtx, student)
	return err
}

// UpdateStudent replaces all fields of the document matching id; missing ids
// are silent no-ops.
func (s *Service) UpdateStudent(ctx context.Context, id string, student *shared.Student) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.studentsCol.UpdateOne(queryCtx, bson.M{"id": id}, bson.M{"$set": student})
	return err
}
