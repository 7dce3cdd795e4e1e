// Package academics manages grades, attendance, schedules, and study
// materials.
package academics

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"campusapi/backend/internal/shared"
)

// Service performs document-store operations for the academic collections.
type Service struct {
	gradesCol     *mongo.Collection
	attendanceCol *mongo.Collection
	schedulesCol  *mongo.Collection
	materialsCol  *mongo.Collection
	timeout       time.Duration
	logger        *zap.Logger
}

// NewService creates an academics Service.
func NewService(db *mongo.Database, cfg *shared.MongoConfig, logger *zap.Logger) *Service {
	return &Service{
		gradesCol:     db.Collection(shared.CollectionGrades),
		attendanceCol: db.Collection(shared.CollectionAttendance),
		schedulesCol:  db.Collection(shared.CollectionSchedules),
		materialsCol:  db.Collection(shared.CollectionMaterials),
		timeout:       cfg.QueryTimeout,
		logger:        logger,
	}
}

// ============================================================================
// Grades
// ============================================================================

// ListGrades returns grades matching the optional student filter, capped at
// the shared list limit. An empty studentID returns every grade.
func (s *Service) ListGrades(ctx context.Context, studentID string) ([]shared.Grade, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{}
	if studentID != "" {
		filter["student_id"] = studentID
	}

	cursor, err := s.gradesCol.Find(queryCtx, filter, options.Find().SetLimit(shared.ListCap))
	if err != nil {
		return nil, err
	}

	grades := []shared.Grade{}
	if err := cursor.All(queryCtx, &grades); err != nil {
		return nil, err
	}
	return grades, nil
}

// CreateGrade inserts the record as-is. TotalMarks is stored as supplied,
// never recomputed from the part marks.
func (s *Service) CreateGrade(ctx context.Context, grade *shared.Grade) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.gradesCol.InsertOne(queryCtx, grade)
	return err
}

// UpdateGrade replaces all fields of the document matching id; missing ids
// are silent no-ops.
func (s *Service) UpdateGrade(ctx context.Context, id string, grade *shared.Grade) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.gradesCol.UpdateOne(queryCtx, bson.M{"id": id}, bson.M{"$set": grade})
	return err
}

// ============================================================================
// Attendance
// ============================================================================

// ListAttendance returns attendance rows matching the optional student
// filter, capped at the shared list limit.
func (s *Service) ListAttendance(ctx context.Context, studentID string) ([]shared.Attendance, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{}
	if studentID != "" {
		filter["student_id"] = studentID
	}

	cursor, err := s.attendanceCol.Find(queryCtx, filter, options.Find().SetLimit(shared.ListCap))
	if err != nil {
		return nil, err
	}

	records := []shared.Attendance{}
	if err := cursor.All(queryCtx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateAttendance inserts the record as-is.
func (s *Service) CreateAttendance(ctx context.Context, record *shared.Attendance) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.attendanceCol.InsertOne(queryCtx, record)
	return err
}

// WaiveAttendance applies a full waiver to the record matching the
// (student_id, subject_code) pair: attended_classes becomes total_classes and
// percentage becomes 100.0. No audit trail is kept beyond the mutated record.
func (s *Service) WaiveAttendance(ctx context.Context, studentID, subjectCode string) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{"student_id": studentID, "subject_code": subjectCode}

	var record shared.Attendance
	if err := s.attendanceCol.FindOne(queryCtx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return shared.NewNotFound("Attendance record")
		}
		return err
	}

	update := bson.M{"$set": bson.M{
		"attended_classes": record.TotalClasses,
		"percentage":       100.0,
	}}

	if _, err := s.attendanceCol.UpdateOne(queryCtx, filter, update); err != nil {
		return err
	}

	s.logger.Info("attendance waived",
		zap.String("student_id", studentID),
		zap.String("subject_code", subjectCode))
	return nil
}

// ============================================================================
// Schedules
// ============================================================================

// ListSchedules returns schedules matching the optional teacher filter,
// capped at the shared list limit.
func (s *Service) ListSchedules(ctx context.Context, teacherID string) ([]shared.Schedule, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{}
	if teacherID != "" {
		filter["teacher_id"] = teacherID
	}

	cursor, err := s.schedulesCol.Find(queryCtx, filter, options.Find().SetLimit(shared.ListCap))
	if err != nil {
		return nil, err
	}

	schedules := []shared.Schedule{}
	if err := cursor.All(queryCtx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// CreateSchedule inserts the record as-is.
func (s *Service) CreateSchedule(ctx context.Context, schedule *shared.Schedule) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.schedulesCol.InsertOne(queryCtx, schedule)
	return err
}

// UpdateSchedule replaces all fields of the document matching id; missing ids
// are silent no-ops.
func (s *Service) UpdateSchedule(ctx context.Context, id string, schedule *shared.Schedule) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.schedulesCol.UpdateOne(queryCtx, bson.M{"id": id}, bson.M{"$set": schedule})
	return err
}

// ============================================================================
// Study Materials
// ============================================================================

// ListMaterials returns every study material, capped at the shared list limit.
func (s *Service) ListMaterials(ctx context.Context) ([]shared.StudyMaterial, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.materialsCol.Find(queryCtx, bson.M{}, options.Find().SetLimit(shared.ListCap))
	if err != nil {
		return nil, err
	}

	materials := []shared.StudyMaterial{}
	if err := cursor.All(queryCtx, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// CreateMaterial inserts the record as-is.
func (s *Service) CreateMaterial(ctx context.Context, material *shared.StudyMaterial) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.materialsCol.InsertOne(queryCtx, material)
	return err
}

// UpdateMaterial replaces all fields of the document matching id; missing ids
// are silent no-ops.
func (s *Service) UpdateMaterial(ctx context.Context, id string, material *shared.StudyMaterial) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.materialsCol.UpdateOne(queryCtx, bson.M{"id": id}, bson.M{"$set": material})
	return err
}
