package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
	"github.com/piresc/chauffeur/services/booking/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricedSession(t *testing.T, uc *BookingUC, deps *testDeps) *session {
	s := startSession(t, uc, deps)
	for _, e := range []models.FieldEdit{
		edit("vehicle", "id", "v-1"),
		edit("pickup", "coordinates", []interface{}{41.379, 2.140}),
		edit("dropoff", "coordinates", []interface{}{41.289, 2.073}),
	} {
		_, err := uc.SetField(context.Background(), s.id, e)
		require.NoError(t, err)
	}
	s.store.SetAvailability(models.AvailabilityResult{
		TotalVehiclesFound: 1,
		AvailableVehicles: []models.AvailableVehicle{
			{ID: "v-1", Name: "Sedan", Tariff: &models.Tariff{BaseFare: 100, PerKm: 2}},
		},
	})
	return s
}

func TestCalculatePrice(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := pricedSession(t, uc, deps)

	deps.routes.EXPECT().Route(gomock.Any(), models.Coordinates{Lat: 41.379, Lng: 2.140}, models.Coordinates{Lat: 41.289, Lng: 2.073}).
		Return(&models.Route{DistanceMeters: 12340, DurationSeconds: 900, Provider: "osrm"}, nil)
	deps.notifier.EXPECT().Broadcast(s.id, constants.EventPriceUpdated, gomock.Any()).Times(1)

	quote, err := uc.CalculatePrice(context.Background(), s.id)

	require.NoError(t, err)
	assert.InDelta(t, 24.68, quote.PriceBreakdown.DistanceCharge, 1e-9)
	assert.InDelta(t, 124.68, quote.PriceBreakdown.Subtotal, 1e-9)
	assert.InDelta(t, 12.47, quote.PriceBreakdown.TaxAmount, 1e-9)
	assert.InDelta(t, 137.15, quote.PriceBreakdown.Total, 1e-9)

	d := s.store.Draft()
	require.NotNil(t, d.Payment.PriceBreakdown)
	require.NotNil(t, d.Payment.RouteInfo)
	assert.InDelta(t, 137.15, d.Payment.Amount, 1e-9)

	// re-selecting the same vehicle keeps the price
	_, err = uc.SetField(context.Background(), s.id, edit("vehicle", "id", "v-1"))
	require.NoError(t, err)
	assert.NotNil(t, s.store.Draft().Payment.PriceBreakdown)
}

func TestCalculatePrice_FallsBackToStandardTariff(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := pricedSession(t, uc, deps)
	s.store.SetAvailability(models.EmptyAvailability(""))

	deps.routes.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Route{DistanceMeters: 10000, DurationSeconds: 600}, nil)
	deps.notifier.EXPECT().Broadcast(s.id, constants.EventPriceUpdated, gomock.Any())

	quote, err := uc.CalculatePrice(context.Background(), s.id)

	require.NoError(t, err)
	// 50 + 10km * 2 = 70, plus 10% tax
	assert.InDelta(t, 70.0, quote.PriceBreakdown.Subtotal, 1e-9)
	assert.InDelta(t, 77.0, quote.PriceBreakdown.Total, 1e-9)
}

func TestCalculatePrice_CannotCalculate(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)
	deps.routes.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.SetField(context.Background(), s.id, edit("vehicle", "id", "v-1"))
	require.NoError(t, err)

	_, err = uc.CalculatePrice(context.Background(), s.id)

	assert.ErrorIs(t, err, booking.ErrCannotCalculate)
}

func TestCalculatePrice_RouteFailure(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := pricedSession(t, uc, deps)

	deps.routes.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("osrm unavailable"))

	_, err := uc.CalculatePrice(context.Background(), s.id)

	assert.Error(t, err)
	d := s.store.Draft()
	assert.Nil(t, d.Payment.PriceBreakdown)
	assert.Zero(t, d.Payment.Amount)
}

func TestCalculatePrice_DraftChangedMeanwhile(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := pricedSession(t, uc, deps)

	deps.routes.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ models.Coordinates) (*models.Route, error) {
			_, err := s.store.SetField("vehicle", "id", "v-2")
			require.NoError(t, err)
			return &models.Route{DistanceMeters: 5000}, nil
		})

	_, err := uc.CalculatePrice(context.Background(), s.id)

	assert.ErrorIs(t, err, form.ErrStalePrice)
	assert.Nil(t, s.store.Draft().Payment.PriceBreakdown)
}

func TestCalculatePrice_FailureKeepsValidPrice(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := pricedSession(t, uc, deps)

	gomock.InOrder(
		deps.routes.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&models.Route{DistanceMeters: 10000, DurationSeconds: 600}, nil),
		deps.routes.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("osrm unavailable")),
	)
	deps.notifier.EXPECT().Broadcast(s.id, constants.EventPriceUpdated, gomock.Any()).Times(1)
	deps.notifier.EXPECT().Broadcast(s.id, constants.EventPriceCleared, gomock.Any()).Times(0)

	_, err := uc.CalculatePrice(context.Background(), s.id)
	require.NoError(t, err)
	before := s.store.Draft().Payment

	_, err = uc.CalculatePrice(context.Background(), s.id)

	assert.Error(t, err)
	after := s.store.Draft().Payment
	require.NotNil(t, after.PriceBreakdown)
	assert.Equal(t, before.Amount, after.Amount)
	assert.Equal(t, *before.PriceBreakdown, *after.PriceBreakdown)
}
