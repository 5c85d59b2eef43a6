package routing

import (
	"context"

	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
)

// ProviderHaversine is the name reported by straight-line routes
const ProviderHaversine = "haversine"

// DefaultSpeedKmh is the average speed assumed for straight-line routes
const DefaultSpeedKmh = 50.0

// HaversineRouter estimates routes as the great-circle distance. It needs
// no network and is meant for development.
type HaversineRouter struct {
	speedKmh float64
}

// NewHaversineRouter creates a router assuming speedKmh, or DefaultSpeedKmh
// when zero.
func NewHaversineRouter(speedKmh float64) *HaversineRouter {
	if speedKmh <= 0 {
		speedKmh = DefaultSpeedKmh
	}
	return &HaversineRouter{speedKmh: speedKmh}
}

// Route returns the straight-line distance and the time to drive it
func (h *HaversineRouter) Route(_ context.Context, origin, destination models.Coordinates) (*models.Route, error) {
	km := utils.HaversineKm(origin, destination)
	return &models.Route{
		DistanceMeters:  km * 1000,
		DurationSeconds: km / h.speedKmh * 3600,
		Provider:        ProviderHaversine,
	}, nil
}
