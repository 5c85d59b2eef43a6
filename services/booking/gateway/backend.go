package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	httpclient "github.com/piresc/chauffeur/internal/pkg/http"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
)

// Backend endpoints
const (
	searchVehiclesEndpoint    = "/admin/reservations/search-vehicles"
	searchFixedRoutesEndpoint = "/admin/routes/fixed/search"
	reservationsEndpoint      = "/admin/reservations"
)

// errMissingCode is returned when the backend accepted a reservation but
// did not assign a code
var errMissingCode = errors.New("reservation response has no code")

// BackendClient talks to the booking backend's admin API
type BackendClient struct {
	apiClient *httpclient.Client
}

// NewBackendGW creates the booking backend gateway
func NewBackendGW(config models.BackendConfig) booking.BackendGW {
	return &BackendClient{
		apiClient: httpclient.NewClient(httpclient.Config{
			BaseURL:     config.BaseURL,
			APIKey:      config.APIKey,
			Timeout:     config.Timeout,
			ServiceName: "booking-backend",
		}),
	}
}

// SearchVehicles asks the backend which vehicles are free at pickup
func (gw *BackendClient) SearchVehicles(ctx context.Context, req models.VehicleSearchRequest) (*models.VehicleSearchResponse, error) {
	var resp models.VehicleSearchResponse
	if err := gw.apiClient.PostJSON(ctx, searchVehiclesEndpoint, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to search vehicles: %w", err)
	}
	return &resp, nil
}

// SearchFixedRoutes looks up fixed routes matching query
func (gw *BackendClient) SearchFixedRoutes(ctx context.Context, query string) (*models.FixedRouteSearchResponse, error) {
	var resp models.FixedRouteSearchResponse
	params := url.Values{"q": []string{query}}
	if err := gw.apiClient.GetJSON(ctx, searchFixedRoutesEndpoint, params, &resp); err != nil {
		logger.ErrorCtx(ctx, "Failed to search fixed routes",
			logger.String("query", query),
			logger.Err(err))
		return nil, fmt.Errorf("failed to search fixed routes: %w", err)
	}
	return &resp, nil
}

// CreateReservation posts a reservation and returns what the backend stored
func (gw *BackendClient) CreateReservation(ctx context.Context, payload models.ReservationPayload) (*models.Reservation, error) {
	var resp models.ReservationResponse
	if err := gw.apiClient.PostJSON(ctx, reservationsEndpoint, payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	if resp.Reservation.Code == "" {
		return nil, errMissingCode
	}
	return &resp.Reservation, nil
}
