package campuslife

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
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

func insertComplaint(t *testing.T, db *mongo.Database, c shared.Complaint) {
	t.Helper()
	col := db.Collection(shared.CollectionComplaints)
	_, err := col.InsertOne(context.Background(), c)
	require.NoError(t, err)
	t.Cleanup(func() {
		col.DeleteMany(context.Background(), bson.M{"id": c.ID})
	})
}

func insertEvent(t *testing.T, db *mongo.Database, e shared.Event) {
	t.Helper()
	col := db.Collection(shared.CollectionEvents)
	_, err := col.InsertOne(context.Background(), e)
	require.NoError(t, err)
	t.Cleanup(func() {
		col.DeleteMany(context.Background(), bson.M{"id": e.ID})
	})
}

func TestToggleVote_Involution(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())
	ctx := context.Background()

	insertComplaint(t, db, shared.Complaint{
		ID: "test_cmp_vote", Title: "Wifi down", Description: "Dorm B has no wifi",
		ComplaintType: shared.ComplaintPublic, Status: shared.StatusPending,
		SubmittedBy: "S123", SubmittedByName: "Jane", SubmittedDate: "2026-02-01",
		Votes: 12, VotedBy: []string{"S123", "S124", "S125"},
	})

	action, err := svc.ToggleVote(ctx, "test_cmp_vote", "S999")
	require.NoError(t, err)
	assert.Equal(t, shared.VoteAdded, action)

	c, err := svc.GetComplaint(ctx, "test_cmp_vote")
	require.NoError(t, err)
	assert.Equal(t, 13, c.Votes)
	assert.Contains(t, c.VotedBy, "S999")

	action, err = svc.ToggleVote(ctx, "test_cmp_vote", "S999")
	require.NoError(t, err)
	assert.Equal(t, shared.VoteRemoved, action)

	c, err = svc.GetComplaint(ctx, "test_cmp_vote")
	require.NoError(t, err)
	assert.Equal(t, 12, c.Votes)
	assert.NotContains(t, c.VotedBy, "S999")
	assert.ElementsMatch(t, []string{"S123", "S124", "S125"}, c.VotedBy)
}

func TestToggleVote_Concurrent(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())
	ctx := context.Background()

	insertComplaint(t, db, shared.Complaint{
		ID: "test_cmp_race", Title: "Mess food quality", Description: "Repeated complaints ignored",
		ComplaintType: shared.ComplaintPublic, Status: shared.StatusPending,
		SubmittedBy: "S123", SubmittedByName: "Jane", SubmittedDate: "2026-02-01",
		Votes: 2, VotedBy: []string{"S123", "S124"},
	})

	// Hammer the same (complaint, user) pair from many goroutines. Individual
	// toggles may fail to settle under contention, but the counter must never
	// drift from the membership list.
	const toggles = 16
	var added, removed int64
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			action, err := svc.ToggleVote(ctx, "test_cmp_race", "S999")
			if err != nil {
				return
			}
			switch action {
			case shared.VoteAdded:
				atomic.AddInt64(&added, 1)
			case shared.VoteRemoved:
				atomic.AddInt64(&removed, 1)
			}
		}()
	}
	wg.Wait()

	c, err := svc.GetComplaint(ctx, "test_cmp_race")
	require.NoError(t, err)
	assert.Equal(t, c.Votes, len(c.VotedBy))

	// The net effect of the settled toggles decides final membership.
	if added-removed > 0 {
		assert.Contains(t, c.VotedBy, "S999")
		assert.Equal(t, 3, c.Votes)
	} else {
		assert.NotContains(t, c.VotedBy, "S999")
		assert.Equal(t, 2, c.Votes)
	}
}

func TestToggleVote_UnknownComplaint(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())

	_, err := svc.ToggleVote(context.Background(), "test_cmp_missing", "S123")
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
}

func TestRegisterForEvent_Idempotent(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())
	ctx := context.Background()

	insertEvent(t, db, shared.Event{
		ID: "test_evt_reg", Title: "Tech Fest", Description: "Annual fest",
		Date: "2026-03-10", Time: "10:00", Location: "Main Hall",
		EventType: shared.EventAcademic, RegistrationRequired: true,
		RegisteredUsers: []string{},
	})

	require.NoError(t, svc.RegisterForEvent(ctx, "test_evt_reg", "S777"))
	require.NoError(t, svc.RegisterForEvent(ctx, "test_evt_reg", "S777"))

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)

	var found *shared.Event
	for i := range events {
		if events[i].ID == "test_evt_reg" {
			found = &events[i]
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, []string{"S777"}, found.RegisteredUsers)
}

func TestRegisterForEvent_UnknownEvent(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())

	err := svc.RegisterForEvent(context.Background(), "test_evt_missing", "S123")
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
	assert.Equal(t, "Event not found", err.Error())
}

func TestResolveComplaint_Integration(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())
	ctx := context.Background()

	insertComplaint(t, db, shared.Complaint{
		ID: "test_cmp_resolve", Title: "Broken AC", Description: "Room 204",
		ComplaintType: shared.ComplaintPrivate, Status: shared.StatusPending,
		SubmittedBy: "S124", SubmittedByName: "Sam", SubmittedDate: "2026-02-02",
		Votes: 0, VotedBy: []string{},
	})

	resolved, err := svc.ResolveComplaint(ctx, "test_cmp_resolve", "Technician dispatched")
	require.NoError(t, err)
	assert.Equal(t, shared.StatusResolved, resolved.Status)
	assert.Equal(t, "Technician dispatched", resolved.Response)
	assert.NotEmpty(t, resolved.ResolvedDate)

	// Resolving again overwrites the response and stays resolved.
	resolved, err = svc.ResolveComplaint(ctx, "test_cmp_resolve", "Confirmed fixed")
	require.NoError(t, err)
	assert.Equal(t, shared.StatusResolved, resolved.Status)
	assert.Equal(t, "Confirmed fixed", resolved.Response)
}

func TestResolveComplaint_UnknownComplaint(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())

	_, err := svc.ResolveComplaint(context.Background(), "test_cmp_missing", "no-op")
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
	assert.Equal(t, "Complaint not found", err.Error())
}

func TestCreateComplaint_NormalisesNilVotedBy(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())
	ctx := context.Background()

	complaint := shared.Complaint{
		ID: "test_cmp_create", Title: "Parking", Description: "Lot full by 8am",
		ComplaintType: shared.ComplaintPublic, Status: shared.StatusPending,
		SubmittedBy: "S125", SubmittedByName: "Kim", SubmittedDate: "2026-02-03",
	}
	require.NoError(t, svc.CreateComplaint(ctx, &complaint))
	t.Cleanup(func() {
		db.Collection(shared.CollectionComplaints).DeleteMany(context.Background(), bson.M{"id": complaint.ID})
	})

	stored, err := svc.GetComplaint(ctx, "test_cmp_create")
	require.NoError(t, err)
	assert.NotNil(t, stored.VotedBy)
	assert.Empty(t, stored.VotedBy)
}

func TestDeleteNotice_MissingIDIsNoOp(t *testing.T) {
	db, cfg := testDB(t)
	svc := NewService(db, cfg, zap.NewNop())

	assert.NoError(t, svc.DeleteNotice(context.Background(), "test_notice_missing"))
}
