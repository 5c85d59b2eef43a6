package booking

import (
	"context"
	"time"

	"github.com/piresc/chauffeur/internal/pkg/models"
)

// DraftRepo persists booking session state between requests
type DraftRepo interface {
	SaveSession(ctx context.Context, state models.SessionState, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.SessionState, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// RouteCacheRepo caches routing provider results
type RouteCacheRepo interface {
	GetRoute(ctx context.Context, origin, destination models.Coordinates) (*models.Route, error)
	SetRoute(ctx context.Context, origin, destination models.Coordinates, route models.Route, ttl time.Duration) error
}

// SubmissionRepo records every reservation attempt
type SubmissionRepo interface {
	RecordSubmission(ctx context.Context, record *models.SubmissionRecord) error
	ListSubmissions(ctx context.Context, sessionID string) ([]models.SubmissionRecord, error)
}
