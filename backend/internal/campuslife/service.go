// Package campuslife manages events, complaints, library books, and notices.
package campuslife

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"campusapi/backend/internal/shared"
)

// voteRetries bounds how often a toggle re-attempts when a concurrent toggle
// for the same user lands between its two conditional updates.
const voteRetries = 3

// Service performs document-store operations for the campus life collections.
type Service struct {
	eventsCol     *mongo.Collection
	complaintsCol *mongo.Collection
	libraryCol    *mongo.Collection
	noticesCol    *mongo.Collection
	timeout       time.Duration
	logger        *zap.Logger
}

// NewService creates a campuslife Service.
func NewService(db *mongo.Database, cfg *shared.MongoConfig, logger *zap.Logger) *Service {
	return &Service{
		eventsCol:     db.Collection(shared.CollectionEvents),
		complaintsCol: db.Collection(shared.CollectionComplaints),
		libraryCol:    db.Collection(shared.CollectionLibrary),
		noticesCol:    db.Collection(shared.CollectionNotices),
		timeout:       cfg.QueryTimeout,
		logger:        logger,
	}
}

// ============================================================================
// Events
// ============================================================================

// ListEvents returns every event, capped at the shared list limit.
func (s *Service) ListEvents(ctx context.Context) ([]shared.Event, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.eventsCol.Find(queryCtx, bson.M{}, options.Find().SetLimit(shared.ListCap))
	if err != nil {
		return nil, err
	}

	events := []shared.Event{}
	if err := cursor.All(queryCtx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent inserts the record as-is, normalising a nil registration set to
// an empty one so the document always carries the array.
func (s *Service) CreateEvent(ctx context.Context, event *shared.Event) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if event.RegisteredUsers == nil {
		event.RegisteredUsers = []string{}
	}

	_, err := s.eventsCol.InsertOne(queryCtx, event)
	return err
}

// UpdateEvent replaces all fields of the document matching id; missing ids
// are silent no-ops.
func (s *Service) UpdateEvent(ctx context.Context, id string, event *shared.Event) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if event.RegisteredUsers == nil {
		event.RegisteredUsers = []string{}
	}

	_, err := s.eventsCol.UpdateOne(queryCtx, bson.M{"id": id}, bson.M{"$set": event})
	return err
}

// RegisterForEvent adds userID to the event's registration set. $addToSet
// makes the call idempotent in a single atomic operation: re-registering is a
// successful no-op and the response never distinguishes the two cases.
func (s *Service) RegisterForEvent(ctx context.Context, eventID, userID string) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{"registered_users": userID}}

	result, err := s.eventsCol.UpdateOne(queryCtx, bson.M{"id": eventID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return shared.NewNotFound("Event")
	}
	return nil
}

// ============================================================================
// Complaints
// ============================================================================

// ListComplaints returns every complaint, capped at the shared list limit.
func (s *Service) ListComplaints(ctx context.Context) ([]shared.Complaint, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.complaintsCol.Find(queryCtx, bson.M{}, options.Find().SetLimit(shared.ListCap))
	if err != nil {
		return nil, err
	}

	complaints := []shared.Complaint{}
	if err := cursor.All(queryCtx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

// GetComplaint returns the complaint with the given id or a NotFound error.
func (s *Service) GetComplaint(ctx context.Context, id string) (*shared.Complaint, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var complaint shared.Complaint
	err := s.complaintsCol.FindOne(queryCtx, bson.M{"id": id}).Decode(&complaint)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, shared.NewNotFound("Complaint")
		}
		return nil, err
	}
	return &complaint, nil
}

// CreateComplaint inserts the record as-is, normalising a nil vote set.
func (s *Service) CreateComplaint(ctx context.Context, complaint *shared.Complaint) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if complaint.VotedBy == nil {
		complaint.VotedBy = []string{}
	}

	_, err := s.complaintsCol.InsertOne(queryCtx, complaint)
	return err
}

// ToggleVote flips userID's membership in the complaint's vote set and
// adjusts the denormalised counter to match. Each direction is one atomic
// conditional update ($pull/$addToSet guarded by a membership filter plus the
// matching $inc), so votes and voted_by can never drift apart, even under
// concurrent toggles. The returned action is "added" or "removed".
func (s *Service) ToggleVote(ctx context.Context, complaintID, userID string) (string, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	for attempt := 0; attempt < voteRetries; attempt++ {
		// Try to remove an existing vote.
		removed, err := s.complaintsCol.UpdateOne(queryCtx,
			bson.M{"id": complaintID, "voted_by": userID},
			bson.M{"$pull": bson.M{"voted_by": userID}, "$inc": bson.M{"votes": -1}},
		)
		if err != nil {
			return "", err
		}
		if removed.MatchedCount > 0 {
			return shared.VoteRemoved, nil
		}

		// Not a voter yet: add, guarded against a concurrent add.
		added, err := s.complaintsCol.UpdateOne(queryCtx,
			bson.M{"id": complaintID, "voted_by": bson.M{"$ne": userID}},
			bson.M{"$addToSet": bson.M{"voted_by": userID}, "$inc": bson.M{"votes": 1}},
		)
		if err != nil {
			return "", err
		}
		if added.MatchedCount > 0 {
			return shared.VoteAdded, nil
		}

		// Both conditional updates missed: either the complaint does not
		// exist, or a concurrent toggle for the same user changed the set
		// between the two calls. Distinguish and retry the latter.
		count, err := s.complaintsCol.CountDocuments(queryCtx, bson.M{"id": complaintID})
		if err != nil {
			return "", err
		}
		if count == 0 {
			return "", shared.NewNotFound("Complaint")
		}
	}

	return "", fmt.Errorf("vote toggle for complaint %s did not settle", complaintID)
}

// ResolveComplaint unconditionally marks the complaint resolved, recording
// the response text and resolution time; re-resolving simply overwrites both.
// The post-update record is returned, or NotFound when the id never existed.
func (s *Service) ResolveComplaint(ctx context.Context, id, responseText string) (*shared.Complaint, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":        shared.StatusResolved,
		"response":      responseText,
		"resolved_date": time.Now().UTC().Format(time.RFC3339),
	}}

	if _, err := s.complaintsCol.UpdateOne(queryCtx, bson.M{"id": id}, update); err != nil {
		return nil, err
	}

	var complaint shared.Complaint
	err := s.complaintsCol.FindOne(queryCtx, bson.M{"id": id}).Decode(&complaint)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, shared.NewNotFound("Complaint")
		}
		return nil, err
	}
	return &complaint, nil
}

// ============================================================================
// Library
// ============================================================================

// ListBooks returns every library book, capped at the shared list limit.
func (s *Service) ListBooks(ctx context.Context) ([]shared.LibraryBook, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.libraryCol.Find(queryCtx, bson.M{}, options.Find().SetLimit(shared.ListCap))
	if err != nil {
		return nil, err
	}

	books := []shared.LibraryBook{}
	if err := cursor.All(queryCtx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook inserts the record as-is.
func (s *Service) CreateBook(ctx context.Context, book *shared.LibraryBook) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.libraryCol.InsertOne(queryCtx, book)
	return err
}

// UpdateBook replaces all fields of the document matching id; missing ids
// are silent no-ops.
func (s *Service) UpdateBook(ctx context.Context, id string, book *shared.LibraryBook) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.libraryCol.UpdateOne(queryCtx, bson.M{"id": id}, bson.M{"$set": book})
	return err
}

// ============================================================================
// Notices
// ============================================================================

// ListNotices returns every notice, capped at the shared list limit.
func (s *Service) ListNotices(ctx context.Context) ([]shared.Notice, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.noticesCol.Find(queryCtx, bson.M{}, options.Find().SetLimit(shared.ListCap))
	if err != nil {
		return nil, err
	}

	notices := []shared.Notice{}
	if err := cursor.All(queryCtx, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

// CreateNotice inserts the record as-is.
func (s *Service) CreateNotice(ctx context.Context, notice *shared.Notice) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.noticesCol.InsertOne(queryCtx, notice)
	return err
}

// DeleteNotice removes the matching document if present; an absent id is a
// silent no-op.
func (s *Service) DeleteNotice(ctx context.Context, id string) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.noticesCol.DeleteOne(queryCtx, bson.M{"id": id})
	return err
}
