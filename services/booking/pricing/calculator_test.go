package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

var (
	origin      = models.Coordinates{Lat: 41.387, Lng: 2.170}
	destination = models.Coordinates{Lat: 41.297, Lng: 2.083}
)

func testConfig(tax float64) Config {
	return Config{
		TaxPercentage:  tax,
		StandardTariff: models.Tariff{BaseFare: 50, PerKm: 2, PerHour: 45},
		Currency:       "EUR",
	}
}

func assertConsistent(t *testing.T, b models.PriceBreakdown) {
	t.Helper()
	assert.InDelta(t, Round2(b.BaseFare+b.DistanceCharge), b.Subtotal, delta)
	assert.InDelta(t, Round2(b.Subtotal+b.TaxAmount), b.Total, delta)
}

func TestCalculate_OneWay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routes := mocks.NewMockRouteGW(ctrl)
	routes.EXPECT().Route(gomock.Any(), origin, destination).
		Return(&models.Route{DistanceMeters: 12340, DurationSeconds: 1800, Provider: "osrm"}, nil)

	calc := NewCalculator(routes, testConfig(10))
	quote, err := calc.Calculate(context.Background(), Input{
		Origin:      origin,
		Destination: destination,
		Tariff:      models.Tariff{BaseFare: 100, PerKm: 2, PerHour: 0},
		ServiceType: models.ServiceOneWay,
	})
	require.NoError(t, err)

	b := quote.PriceBreakdown
	assert.InDelta(t, 100.0, b.BaseFare, delta)
	assert.InDelta(t, 24.68, b.DistanceCharge, delta)
	assert.InDelta(t, 124.68, b.Subtotal, delta)
	assert.InDelta(t, 10.0, b.TaxPercentage, delta)
	assert.InDelta(t, 12.47, b.TaxAmount, delta)
	assert.InDelta(t, 137.15, b.Total, delta)
	assert.InDelta(t, 12.34, b.TotalDistanceKm, delta)
	assert.False(t, b.IsRoundTrip)
	assert.Nil(t, b.OneWayDistanceKm)
	assert.Equal(t, "EUR", b.Currency)
	assertConsistent(t, b)

	assert.InDelta(t, 12.34, quote.RouteInfo.OneWayDistanceKm, delta)
	assert.InDelta(t, 30.0, quote.RouteInfo.DurationMinutes, delta)
	assert.Equal(t, "osrm", quote.RouteInfo.Provider)
}

func TestCalculate_RoundTripDoublesDistance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routes := mocks.NewMockRouteGW(ctrl)
	routes.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Route{DistanceMeters: 8200, DurationSeconds: 900}, nil)

	calc := NewCalculator(routes, testConfig(10))
	quote, err := calc.Calculate(context.Background(), Input{
		Origin:      origin,
		Destination: destination,
		Tariff:      calc.StandardTariff(),
		ServiceType: models.ServiceRoundTrip,
	})
	require.NoError(t, err)

	b := quote.PriceBreakdown
	require.NotNil(t, b.OneWayDistanceKm)
	assert.InDelta(t, 8.2, *b.OneWayDistanceKm, delta)
	assert.InDelta(t, 2*(*b.OneWayDistanceKm), b.TotalDistanceKm, delta)
	assert.True(t, b.IsRoundTrip)
	assert.InDelta(t, 32.8, b.DistanceCharge, delta)
	assert.InDelta(t, 91.08, b.Total, delta)
	assertConsistent(t, b)

	assert.True(t, quote.RouteInfo.IsRoundTrip)
	assert.InDelta(t, 16.4, quote.RouteInfo.TotalDistanceKm, delta)
	assert.InDelta(t, 30.0, quote.RouteInfo.DurationMinutes, delta)
}

func TestCalculate_HourlyAddsPerHour(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routes := mocks.NewMockRouteGW(ctrl)
	routes.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Route{DistanceMeters: 10000}, nil)

	calc := NewCalculator(routes, testConfig(10))
	quote, err := calc.Calculate(context.Background(), Input{
		Origin:          origin,
		Destination:     destination,
		Tariff:          calc.StandardTariff(),
		ServiceType:     models.ServiceHourly,
		DurationMinutes: 120,
	})
	require.NoError(t, err)

	assert.InDelta(t, 110.0, quote.PriceBreakdown.DistanceCharge, delta)
	assert.InDelta(t, 176.0, quote.PriceBreakdown.Total, delta)
}

func TestCalculate_RouteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routeErr := errors.New("no route found")
	routes := mocks.NewMockRouteGW(ctrl)
	routes.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, routeErr)

	calc := NewCalculator(routes, testConfig(10))
	quote, err := calc.Calculate(context.Background(), Input{Origin: origin, Destination: destination})
	assert.ErrorIs(t, err, routeErr)
	assert.Equal(t, models.PriceQuote{}, quote)
}

func TestResolveTariff(t *testing.T) {
	calc := NewCalculator(nil, testConfig(10))
	availability := &models.AvailabilityResult{
		AvailableVehicles: []models.AvailableVehicle{
			{ID: "v-1", Tariff: &models.Tariff{BaseFare: 100, PerKm: 2}},
			{ID: "v-2"},
		},
		VehiclesWithAlternativeSchedules: []json.RawMessage{
			json.RawMessage(`{"id":"v-3","tariff":{"base_fare":80,"per_km":1.5,"per_hour":30}}`),
		},
	}

	tests := []struct {
		name      string
		vehicleID string
		avail     *models.AvailabilityResult
		wantFound bool
		wantBase  float64
	}{
		{name: "available vehicle", vehicleID: "v-1", avail: availability, wantFound: true, wantBase: 100},
		{name: "alternative schedule", vehicleID: "v-3", avail: availability, wantFound: true, wantBase: 80},
		{name: "vehicle without tariff", vehicleID: "v-2", avail: availability, wantFound: false, wantBase: 50},
		{name: "no availability", vehicleID: "v-1", avail: nil, wantFound: false, wantBase: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tariff, found := calc.ResolveTariff(tt.vehicleID, tt.avail)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantBase, tariff.BaseFare)
		})
	}

	tariff, _ := calc.ResolveTariff("missing", nil)
	assert.Equal(t, "EUR", tariff.Currency)
}

func TestCanCalculate(t *testing.T) {
	d := models.NewBookingDraft("EUR")
	assert.False(t, CanCalculate(d))

	d.Vehicle = &models.Ref{ID: "v-1"}
	d.Service.Pickup.Coordinates = &models.Coordinates{Lat: 41.38, Lng: 2.17}
	assert.False(t, CanCalculate(d))

	d.Service.Dropoff.Coordinates = &models.Coordinates{Lat: 41.29, Lng: 2.07}
	assert.True(t, CanCalculate(d))

	d.Vehicle = &models.Ref{}
	assert.False(t, CanCalculate(d))
}

func TestFixedRouteQuote(t *testing.T) {
	calc := NewCalculator(nil, testConfig(21))
	route := models.FixedRoute{ID: "r-1", DistanceKm: 14.5, Price: 65}

	quote := calc.FixedRouteQuote(route, models.ServiceRoundTrip)
	b := quote.PriceBreakdown
	assert.InDelta(t, 130.0, b.Subtotal, delta)
	assert.InDelta(t, 27.3, b.TaxAmount, delta)
	assert.InDelta(t, 157.3, b.Total, delta)
	assert.InDelta(t, 29.0, b.TotalDistanceKm, delta)
	assert.Equal(t, "EUR", b.Currency)
	assertConsistent(t, b)

	oneWay := calc.FixedRouteQuote(route, models.ServiceOneWay)
	assert.InDelta(t, 65.0, oneWay.PriceBreakdown.Subtotal, delta)
	assert.Equal(t, "fixed_route", oneWay.RouteInfo.Provider)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.47, Round2(12.468))
	assert.Equal(t, 0.0, Round2(0.004))
	assert.Equal(t, 1.01, Round2(1.005000001))
}
