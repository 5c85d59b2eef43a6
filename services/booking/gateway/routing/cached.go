package routing

import (
	"context"
	"time"

	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
)

// CachedRouter serves routes from the cache and fills it from next
type CachedRouter struct {
	next  booking.RouteGW
	cache booking.RouteCacheRepo
	ttl   time.Duration
}

// NewCachedRouter wraps next with cache
func NewCachedRouter(next booking.RouteGW, cache booking.RouteCacheRepo, ttl time.Duration) *CachedRouter {
	return &CachedRouter{next: next, cache: cache, ttl: ttl}
}

// Route returns a cached route when one exists for both endpoints. Cache
// failures are logged and fall through to the provider.
func (c *CachedRouter) Route(ctx context.Context, origin, destination models.Coordinates) (*models.Route, error) {
	cached, err := c.cache.GetRoute(ctx, origin, destination)
	if err != nil {
		logger.WarnCtx(ctx, "Route cache read failed", logger.Err(err))
	} else if cached != nil {
		return cached, nil
	}

	route, err := c.next.Route(ctx, origin, destination)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetRoute(ctx, origin, destination, *route, c.ttl); err != nil {
		logger.WarnCtx(ctx, "Route cache write failed", logger.Err(err))
	}
	return route, nil
}

// NewRouteGW builds the configured provider, cached when cache is set
func NewRouteGW(config models.RoutingConfig, cache booking.RouteCacheRepo) booking.RouteGW {
	var provider booking.RouteGW
	switch config.Provider {
	case ProviderHaversine:
		provider = NewHaversineRouter(DefaultSpeedKmh)
	default:
		provider = NewOSRMClient(config.BaseURL, config.Timeout)
	}

	if cache == nil {
		return provider
	}
	return NewCachedRouter(provider, cache, config.CacheTTL)
}
