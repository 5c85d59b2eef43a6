package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking/form"
)

// SetField applies one form edit. Unknown fields are ignored; invalid values
// return form.ErrInvalidValue.
func (uc *BookingUC) SetField(ctx context.Context, sessionID string, edit models.FieldEdit) (*models.SessionState, error) {
	s, err := uc.openSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	res, err := s.store.SetField(edit.Section, edit.Field, edit.Value)
	if err != nil {
		return nil, err
	}
	if !res.Applied {
		logger.Debug("Ignoring unknown field",
			logger.String("section", edit.Section),
			logger.String("field", edit.Field))
	}
	if res.PriceCleared {
		uc.broadcast(s, constants.EventPriceCleared, nil)
	}

	state := uc.state(s)
	if res.Changed {
		state = uc.persist(ctx, s)
	}
	return &state, nil
}

// SearchPlaces returns address suggestions restricted to the configured
// countries.
func (uc *BookingUC) SearchPlaces(ctx context.Context, query string) ([]models.PlaceResult, error) {
	return uc.placesGW.Search(ctx, query, uc.cfg.Places.Countries)
}

// ResolvePlace geocodes a suggestion and writes its description and
// coordinates into the pickup or dropoff of the draft.
func (uc *BookingUC) ResolvePlace(ctx context.Context, sessionID string, target models.StopTarget, placeID string) (*models.SessionState, error) {
	if target != models.TargetPickup && target != models.TargetDropoff {
		return nil, fmt.Errorf("target %q: %w", target, form.ErrInvalidValue)
	}

	s, err := uc.openSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	place, err := uc.placesGW.Resolve(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place.Coordinates == nil {
		logger.WarnCtx(ctx, "Resolved place has no coordinates",
			logger.String("session_id", sessionID),
			logger.String("place_id", placeID))
	}

	section := string(target)
	locRes, err := s.store.SetField(section, "location", place.Description)
	if err != nil {
		return nil, err
	}
	coordRes, err := s.store.SetField(section, "coordinates", place.Coordinates)
	if err != nil {
		return nil, err
	}

	if locRes.PriceCleared || coordRes.PriceCleared {
		uc.broadcast(s, constants.EventPriceCleared, nil)
	}

	state := uc.persist(ctx, s)
	return &state, nil
}

// SearchFixedRoutes looks up pre-defined routes
func (uc *BookingUC) SearchFixedRoutes(ctx context.Context, query string) ([]models.FixedRoute, error) {
	resp, err := uc.backendGW.SearchFixedRoutes(ctx, query)
	if err != nil {
		return nil, err
	}
	if resp.Routes == nil {
		if resp.Message != "" {
			logger.InfoCtx(ctx, "No fixed routes found",
				logger.String("query", query),
				logger.String("message", resp.Message))
		}
		return []models.FixedRoute{}, nil
	}
	return resp.Routes, nil
}

// SelectFixedRoute copies a fixed route's endpoints, vehicle, driver and
// preset price into the draft in one step.
func (uc *BookingUC) SelectFixedRoute(ctx context.Context, sessionID string, route models.FixedRoute) (*models.SessionState, error) {
	s, err := uc.openSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	quote := uc.calculator.FixedRouteQuote(route, s.store.Draft().Service.Type)
	s.store.ApplyFixedRoute(route, quote)

	logger.InfoCtx(ctx, "Fixed route selected",
		logger.String("session_id", sessionID),
		logger.String("route_id", route.ID),
		logger.Float64("total", quote.PriceBreakdown.Total))
	uc.broadcast(s, constants.EventPriceUpdated, quote)

	state := uc.persist(ctx, s)
	return &state, nil
}
