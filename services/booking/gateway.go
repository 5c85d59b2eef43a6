package booking

import (
	"context"

	"github.com/piresc/chauffeur/internal/pkg/models"
)

// BackendGW defines the booking backend (admin API) operations
type BackendGW interface {
	SearchVehicles(ctx context.Context, req models.VehicleSearchRequest) (*models.VehicleSearchResponse, error)
	SearchFixedRoutes(ctx context.Context, query string) (*models.FixedRouteSearchResponse, error)
	CreateReservation(ctx context.Context, payload models.ReservationPayload) (*models.Reservation, error)
}

// PlacesGW defines the place search and geocoding provider
type PlacesGW interface {
	Search(ctx context.Context, query string, countries []string) ([]models.PlaceResult, error)
	Resolve(ctx context.Context, placeID string) (*models.ResolvedLocation, error)
}

// RouteGW resolves driving distance and duration between two points
type RouteGW interface {
	Route(ctx context.Context, origin, destination models.Coordinates) (*models.Route, error)
}

// EventGW publishes booking events
type EventGW interface {
	PublishReservationCreated(ctx context.Context, event models.ReservationCreatedEvent) error
	PublishSubmissionFailed(ctx context.Context, event models.SubmissionFailedEvent) error
	PublishAvailabilityProbed(ctx context.Context, event models.AvailabilityProbedEvent) error
}

// SessionNotifier pushes session events to live subscribers
type SessionNotifier interface {
	Broadcast(sessionID string, event string, data interface{})
}
