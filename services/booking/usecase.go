package booking

import (
	"context"

	"github.com/piresc/chauffeur/internal/pkg/models"
)

// BookingUC defines the booking session operations
type BookingUC interface {
	StartSession(ctx context.Context) (*models.SessionState, error)
	GetSession(ctx context.Context, sessionID string) (*models.SessionState, error)
	CloseSession(ctx context.Context, sessionID string) error

	SetField(ctx context.Context, sessionID string, edit models.FieldEdit) (*models.SessionState, error)
	SearchPlaces(ctx context.Context, query string) ([]models.PlaceResult, error)
	ResolvePlace(ctx context.Context, sessionID string, target models.StopTarget, placeID string) (*models.SessionState, error)

	ProbeAvailability(ctx context.Context, sessionID string) (*models.AvailabilityResult, error)
	AddExtendedHoursVehicle(ctx context.Context, sessionID string, vehicle models.Ref) (*models.AvailabilityResult, error)

	CalculatePrice(ctx context.Context, sessionID string) (*models.PriceQuote, error)
	SearchFixedRoutes(ctx context.Context, query string) ([]models.FixedRoute, error)
	SelectFixedRoute(ctx context.Context, sessionID string, route models.FixedRoute) (*models.SessionState, error)

	NextStep(ctx context.Context, sessionID string) (*models.StepResult, error)
	PreviousStep(ctx context.Context, sessionID string) (*models.StepResult, error)
	GoToStep(ctx context.Context, sessionID string, step models.Step) (*models.StepResult, error)

	Submit(ctx context.Context, sessionID string) (*models.SubmissionResult, error)
}
