// Package auth implements credential checks against the users collection.
package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"campusapi/backend/internal/shared"
)

// Service authenticates users by exact plaintext credential match. There is
// no hashing, rate limiting, or session issuance; the stored user record is
// returned as-is on success.
type Service struct {
	usersCol *mongo.Collection
	timeout  time.Duration
	logger   *zap.Logger
}

// NewService creates an auth Service bound to the users collection.
func NewService(db *mongo.Database, cfg *shared.MongoConfig, logger *zap.Logger) *Service {
	return &Service{
		usersCol: db.Collection(shared.CollectionUsers),
		timeout:  cfg.QueryTimeout,
		logger:   logger,
	}
}

// Login looks up a user whose username and password both match exactly.
// A credential mismatch is a business outcome, not an error: the response
// carries Success=false and the call returns nil error.
func (s *Service) Login(ctx context.Context, req *shared.LoginRequest) (*shared.LoginResponse, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var user shared.User
	filter := bson.M{"username": req.Username, "password": req.Password}

	err := s.usersCol.FindOne(queryCtx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &shared.LoginResponse{Success: false, Message: "Invalid credentials"}, nil
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return nil, err
	}

	return &shared.LoginResponse{Success: true, User: &user}, nil
}
