package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking/availability"
	"github.com/piresc/chauffeur/services/booking/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edit(section, field string, value interface{}) models.FieldEdit {
	return models.FieldEdit{Section: section, Field: field, Value: value}
}

func TestSetField(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)

	state, err := uc.SetField(context.Background(), s.id, edit("client", "name", "Ana Garcia"))
	require.NoError(t, err)
	assert.Equal(t, "Ana Garcia", state.Draft.Client.Name)

	// unknown fields are ignored
	state, err = uc.SetField(context.Background(), s.id, edit("client", "nickname", "Ani"))
	require.NoError(t, err)
	assert.Equal(t, "Ana Garcia", state.Draft.Client.Name)

	_, err = uc.SetField(context.Background(), s.id, edit("details", "passengers", "many"))
	assert.ErrorIs(t, err, form.ErrInvalidValue)
}

func TestSetField_ClearsPrice(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)

	quote := models.PriceQuote{PriceBreakdown: models.PriceBreakdown{Subtotal: 100, TaxAmount: 10, Total: 110}}
	_, err := uc.SetField(context.Background(), s.id, edit("vehicle", "id", "v-1"))
	require.NoError(t, err)
	require.NoError(t, s.store.ApplyPrice(s.store.Draft().PriceKey(), quote))

	deps.notifier.EXPECT().Broadcast(s.id, constants.EventPriceCleared, gomock.Nil()).Times(1)

	state, err := uc.SetField(context.Background(), s.id, edit("dropoff", "location", "Airport T1"))

	require.NoError(t, err)
	assert.Nil(t, state.Draft.Payment.PriceBreakdown)
	assert.Nil(t, state.Draft.Payment.RouteInfo)
	assert.Zero(t, state.Draft.Payment.Amount)
}

func TestSearchPlaces(t *testing.T) {
	uc, deps := setupUC(t, nil)

	deps.places.EXPECT().Search(gomock.Any(), "sagrada", []string{"es", "pt"}).
		Return([]models.PlaceResult{{PlaceID: "p-1", Description: "Sagrada Familia, Barcelona"}}, nil)

	results, err := uc.SearchPlaces(context.Background(), "sagrada")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p-1", results[0].PlaceID)
}

func TestResolvePlace(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)

	coords := &models.Coordinates{Lat: 41.4036, Lng: 2.1744}
	deps.places.EXPECT().Resolve(gomock.Any(), "p-1").
		Return(&models.ResolvedLocation{Description: "Sagrada Familia, Barcelona", Coordinates: coords}, nil)

	triggered := make(chan string, 4)
	s.store.Watch(form.ProbeFields, func(field string) { triggered <- field })

	state, err := uc.ResolvePlace(context.Background(), s.id, models.TargetPickup, "p-1")

	require.NoError(t, err)
	assert.Equal(t, "Sagrada Familia, Barcelona", state.Draft.Service.Pickup.Location)
	assert.Equal(t, coords, state.Draft.Service.Pickup.Coordinates)
	assert.Len(t, triggered, 2)
	assert.True(t, s.scheduler.Pending())
}

func TestResolvePlace_Dropoff(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)

	deps.places.EXPECT().Resolve(gomock.Any(), "p-2").
		Return(&models.ResolvedLocation{Description: "El Prat T1"}, nil)

	state, err := uc.ResolvePlace(context.Background(), s.id, models.TargetDropoff, "p-2")

	require.NoError(t, err)
	assert.Equal(t, "El Prat T1", state.Draft.Service.Dropoff.Location)
	assert.Nil(t, state.Draft.Service.Dropoff.Coordinates)
	assert.False(t, s.scheduler.Pending())
}

func TestResolvePlace_InvalidTarget(t *testing.T) {
	uc, _ := setupUC(t, nil)

	_, err := uc.ResolvePlace(context.Background(), "sess-1", models.StopTarget("stopover"), "p-1")

	assert.ErrorIs(t, err, form.ErrInvalidValue)
}

func TestSearchFixedRoutes(t *testing.T) {
	uc, deps := setupUC(t, nil)

	deps.backend.EXPECT().SearchFixedRoutes(gomock.Any(), "airport").
		Return(&models.FixedRouteSearchResponse{Status: "success", Routes: []models.FixedRoute{{ID: "fr-1"}}}, nil)
	deps.backend.EXPECT().SearchFixedRoutes(gomock.Any(), "moon").
		Return(&models.FixedRouteSearchResponse{Status: "success", Message: "No routes found"}, nil)

	routes, err := uc.SearchFixedRoutes(context.Background(), "airport")
	require.NoError(t, err)
	assert.Len(t, routes, 1)

	routes, err = uc.SearchFixedRoutes(context.Background(), "moon")
	require.NoError(t, err)
	assert.NotNil(t, routes)
	assert.Empty(t, routes)
}

func TestSelectFixedRoute(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)

	route := models.FixedRoute{
		ID:          "fr-1",
		Origin:      models.FixedRouteStop{Location: "Sants", Coordinates: &models.Coordinates{Lat: 41.379, Lng: 2.140}},
		Destination: models.FixedRouteStop{Location: "El Prat T1", Coordinates: &models.Coordinates{Lat: 41.289, Lng: 2.073}},
		DistanceKm:  15,
		Price:       40,
		Vehicle:     models.Ref{ID: "v-3", Name: "Van"},
	}
	deps.notifier.EXPECT().Broadcast(s.id, constants.EventPriceUpdated, gomock.Any()).Times(1)

	state, err := uc.SelectFixedRoute(context.Background(), s.id, route)

	require.NoError(t, err)
	assert.Equal(t, models.RouteFixed, state.Draft.Service.RouteType)
	assert.Equal(t, "Sants", state.Draft.Service.Pickup.Location)
	require.NotNil(t, state.Draft.Vehicle)
	assert.Equal(t, "v-3", state.Draft.Vehicle.ID)
	require.NotNil(t, state.Draft.Payment.PriceBreakdown)
	assert.InDelta(t, 44.0, state.Draft.Payment.PriceBreakdown.Total, 1e-9)
	assert.InDelta(t, 44.0, state.Draft.Payment.Amount, 1e-9)
}

func TestDebouncedProbe(t *testing.T) {
	uc, deps := setupUC(t, func(cfg *models.Config) {
		cfg.Booking.SettlingDelay = 50 * time.Millisecond
		cfg.Booking.RetriggerAfterProbe = true
	})
	s := startSession(t, uc, deps)

	deps.backend.EXPECT().SearchVehicles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.VehicleSearchRequest) (*models.VehicleSearchResponse, error) {
			assert.Equal(t, "Sants", req.PickupAddress)
			assert.Equal(t, "2026-11-02", req.PickupDate)
			assert.Equal(t, "09:30", req.PickupTime)
			assert.Equal(t, 60, req.EstimatedDuration)
			return &models.VehicleSearchResponse{
				SearchResults: models.VehicleSearchSummary{TotalVehiclesFound: 1, FlexibleVehiclesFound: 1},
				Vehicles:      []models.AvailableVehicle{{ID: "v-1", Name: "Sedan"}},
			}, nil
		}).Times(1)
	deps.events.EXPECT().PublishAvailabilityProbed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.AvailabilityProbedEvent) error {
			assert.Equal(t, s.id, e.SessionID)
			return nil
		}).MinTimes(1)
	deps.notifier.EXPECT().Broadcast(s.id, constants.EventAvailabilityUpdated, gomock.Any()).MinTimes(1)

	ctx := context.Background()
	for _, e := range []models.FieldEdit{
		edit("pickup", "location", "Sant"),
		edit("pickup", "location", "Sants"),
		edit("pickup", "coordinates", map[string]interface{}{"lat": 41.379, "lng": 2.140}),
		edit("pickup", "date", "2026-11-02"),
		edit("pickup", "time", "09:30"),
	} {
		_, err := uc.SetField(ctx, s.id, e)
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		a, ok := s.store.Availability()
		return ok && a.TotalVehiclesFound == 1
	}, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return !s.scheduler.InFlight() }, time.Second, 5*time.Millisecond)
}

func TestProbeAvailability_MissingCoordinates(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)

	deps.backend.EXPECT().SearchVehicles(gomock.Any(), gomock.Any()).Times(0)
	deps.events.EXPECT().PublishAvailabilityProbed(gomock.Any(), gomock.Any()).Return(nil)
	deps.notifier.EXPECT().Broadcast(s.id, constants.EventAvailabilityUpdated, gomock.Any())

	result, err := uc.ProbeAvailability(context.Background(), s.id)

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalVehiclesFound)
	assert.Equal(t, availability.MsgMissingCoordinates, result.Message)

	stored, ok := s.store.Availability()
	require.True(t, ok)
	assert.Equal(t, availability.MsgMissingCoordinates, stored.Message)
}

func TestAddExtendedHoursVehicle(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)

	deps.notifier.EXPECT().Broadcast(s.id, constants.EventAvailabilityUpdated, gomock.Any()).Times(1)

	result, err := uc.AddExtendedHoursVehicle(context.Background(), s.id, models.Ref{ID: "v-7", Name: "Limousine"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalVehiclesFound)
	require.Len(t, result.AvailableVehicles, 1)
	v := result.AvailableVehicles[0]
	assert.True(t, v.ExtendedHours)
	require.NotNil(t, v.Tariff)
	assert.Equal(t, 50.0, v.Tariff.BaseFare)

	_, err = uc.AddExtendedHoursVehicle(context.Background(), s.id, models.Ref{})
	assert.ErrorIs(t, err, form.ErrInvalidValue)
}
