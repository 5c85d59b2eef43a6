package routing

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	httpclient "github.com/piresc/chauffeur/internal/pkg/http"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/pkg/retry"
)

// ProviderOSRM is the name reported by routes from an OSRM server
const ProviderOSRM = "osrm"

// ErrNoRoute is returned when the provider found no drivable route
var ErrNoRoute = errors.New("no route between the given points")

type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Routes  []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// OSRMClient resolves driving routes with an OSRM-compatible server
type OSRMClient struct {
	apiClient *httpclient.Client
	retrier   *retry.Retrier
}

// NewOSRMClient creates a client for the server at baseURL
func NewOSRMClient(baseURL string, timeout time.Duration) *OSRMClient {
	cfg := retry.DefaultConfig()
	cfg.MaxRetries = 2
	cfg.IsRetryable = isRetryable

	return &OSRMClient{
		apiClient: httpclient.NewClient(httpclient.Config{
			BaseURL:     baseURL,
			Timeout:     timeout,
			ServiceName: "osrm",
		}),
		retrier: retry.New("osrm-route", cfg),
	}
}

// Route returns the driving distance and duration from origin to destination
func (c *OSRMClient) Route(ctx context.Context, origin, destination models.Coordinates) (*models.Route, error) {
	// OSRM takes lng,lat pairs
	endpoint := fmt.Sprintf("/route/v1/driving/%f,%f;%f,%f",
		origin.Lng, origin.Lat, destination.Lng, destination.Lat)
	params := url.Values{"overview": []string{"false"}}

	var resp osrmResponse
	err := c.retrier.Execute(ctx, func(ctx context.Context) error {
		resp = osrmResponse{}
		return c.apiClient.GetJSON(ctx, endpoint, params, &resp)
	})
	if err != nil {
		var apiErr *httpclient.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 400 {
			return nil, fmt.Errorf("%w: %s", ErrNoRoute, apiErr.Detail)
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	if resp.Code != "Ok" || len(resp.Routes) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNoRoute, resp.Code, resp.Message)
	}

	return &models.Route{
		DistanceMeters:  resp.Routes[0].Distance,
		DurationSeconds: resp.Routes[0].Duration,
		Provider:        ProviderOSRM,
	}, nil
}

// isRetryable retries transport failures and server errors only
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return true
}
