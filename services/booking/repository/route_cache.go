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
	"github.com/piresc/chauffeur/internal/utils"
)

// RouteCacheRepo caches routes keyed by the geohash cells of both ends
type RouteCacheRepo struct {
	redisClient *database.RedisClient
}

// NewRouteCacheRepository creates a new route cache repository
func NewRouteCacheRepository(redisClient *database.RedisClient) *RouteCacheRepo {
	return &RouteCacheRepo{redisClient: redisClient}
}

func routeKey(origin, destination models.Coordinates) string {
	return fmt.Sprintf(constants.KeyRouteCache,
		utils.EncodeCoordinates(origin, constants.RouteCachePrecision),
		utils.EncodeCoordinates(destination, constants.RouteCachePrecision))
}

// GetRoute returns the cached route, or nil when there is none
func (r *RouteCacheRepo) GetRoute(ctx context.Context, origin, destination models.Coordinates) (*models.Route, error) {
	data, err := r.redisClient.Get(ctx, routeKey(origin, destination))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached route: %w", err)
	}

	var route models.Route
	if err := json.Unmarshal([]byte(data), &route); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached route: %w", err)
	}
	return &route, nil
}

// SetRoute caches a route for ttl
func (r *RouteCacheRepo) SetRoute(ctx context.Context, origin, destination models.Coordinates, route models.Route, ttl time.Duration) error {
	data, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("failed to marshal route: %w", err)
	}
	if err := r.redisClient.Set(ctx, routeKey(origin, destination), data, ttl); err != nil {
		return fmt.Errorf("failed to cache route: %w", err)
	}
	return nil
}
