package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	httpclient "github.com/piresc/chauffeur/internal/pkg/http"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
)

// MinQueryLength is the shortest query sent to the place provider
const MinQueryLength = 3

// Place provider statuses
const (
	placesStatusOK          = "OK"
	placesStatusZeroResults = "ZERO_RESULTS"
)

type autocompleteResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Predictions  []struct {
		PlaceID     string `json:"place_id"`
		Description string `json:"description"`
	} `json:"predictions"`
}

type detailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Result       struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         *struct {
			Location *struct {
				Lat *float64 `json:"lat"`
				Lng *float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// PlacesClient searches and resolves addresses with the place provider
type PlacesClient struct {
	apiClient *httpclient.Client
}

// NewPlacesGW creates the place provider gateway
func NewPlacesGW(config models.PlacesConfig) booking.PlacesGW {
	return &PlacesClient{
		apiClient: httpclient.NewClient(httpclient.Config{
			BaseURL:     config.BaseURL,
			APIKey:      config.APIKey,
			Timeout:     config.Timeout,
			ServiceName: "places",
		}),
	}
}

// Search returns address suggestions restricted to countries. Queries
// shorter than MinQueryLength return nothing without calling the provider.
func (gw *PlacesClient) Search(ctx context.Context, query string, countries []string) ([]models.PlaceResult, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return []models.PlaceResult{}, nil
	}

	params := url.Values{"input": []string{query}}
	if len(countries) > 0 {
		components := make([]string, 0, len(countries))
		for _, c := range countries {
			components = append(components, "country:"+c)
		}
		params.Set("components", strings.Join(components, "|"))
	}

	var resp autocompleteResponse
	if err := gw.apiClient.GetJSON(ctx, "/autocomplete", params, &resp); err != nil {
		return nil, fmt.Errorf("failed to search places: %w", err)
	}
	switch resp.Status {
	case placesStatusOK, placesStatusZeroResults, "":
	default:
		return nil, fmt.Errorf("place search returned %s: %s", resp.Status, resp.ErrorMessage)
	}

	results := make([]models.PlaceResult, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		results = append(results, models.PlaceResult{PlaceID: p.PlaceID, Description: p.Description})
	}
	return results, nil
}

// Resolve returns the place's address and coordinates. A place without
// geometry resolves with nil coordinates rather than an error.
func (gw *PlacesClient) Resolve(ctx context.Context, placeID string) (*models.ResolvedLocation, error) {
	params := url.Values{"place_id": []string{placeID}}

	var resp detailsResponse
	if err := gw.apiClient.GetJSON(ctx, "/details", params, &resp); err != nil {
		return nil, fmt.Errorf("failed to resolve place: %w", err)
	}
	if resp.Status != "" && resp.Status != placesStatusOK {
		return nil, fmt.Errorf("place details returned %s: %s", resp.Status, resp.ErrorMessage)
	}

	loc := &models.ResolvedLocation{Description: resp.Result.FormattedAddress}
	if loc.Description == "" {
		loc.Description = resp.Result.Name
	}

	g := resp.Result.Geometry
	if g != nil && g.Location != nil && g.Location.Lat != nil && g.Location.Lng != nil {
		c := models.Coordinates{Lat: *g.Location.Lat, Lng: *g.Location.Lng}
		if c.Valid() {
			loc.Coordinates = &c
		}
	}
	if loc.Coordinates == nil {
		logger.WarnCtx(ctx, "Resolved place has no usable geometry",
			logger.String("place_id", placeID))
	}
	return loc, nil
}
