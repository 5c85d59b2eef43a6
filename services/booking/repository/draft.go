package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/database"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
)

// DraftRepo stores booking session state in Redis
type DraftRepo struct {
	redisClient *database.RedisClient
}

// NewDraftRepository creates a new draft repository
func NewDraftRepository(redisClient *database.RedisClient) *DraftRepo {
	return &DraftRepo{redisClient: redisClient}
}

// SaveSession writes the session state, replacing the previous copy
func (r *DraftRepo) SaveSession(ctx context.Context, state models.SessionState, ttl time.Duration) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	key := fmt.Sprintf(constants.KeyBookingDraft, state.ID)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}
	return nil
}

// GetSession loads a session state. Missing or expired sessions return
// booking.ErrSessionNotFound.
func (r *DraftRepo) GetSession(ctx context.Context, sessionID string) (*models.SessionState, error) {
	key := fmt.Sprintf(constants.KeyBookingDraft, sessionID)
	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, booking.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session state: %w", err)
	}

	var state models.SessionState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	return &state, nil
}

// DeleteSession removes a session state
func (r *DraftRepo) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constants.KeyBookingDraft, sessionID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete session state: %w", err)
	}
	return nil
}
