package pricing

import (
	"context"
	"fmt"
	"math"

	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	nrpkg "github.com/piresc/chauffeur/internal/pkg/newrelic"
	"github.com/piresc/chauffeur/services/booking"
)

// Config holds tax and fallback tariff settings
type Config struct {
	TaxPercentage  float64
	StandardTariff models.Tariff
	Currency       string
}

// Input is everything a price depends on
type Input struct {
	Origin          models.Coordinates
	Destination     models.Coordinates
	Tariff          models.Tariff
	ServiceType     models.ServiceType
	DurationMinutes int
}

// Calculator turns a route and a tariff into a tax-inclusive price
type Calculator struct {
	routes booking.RouteGW
	cfg    Config
}

// NewCalculator creates a calculator using routes for distances
func NewCalculator(routes booking.RouteGW, cfg Config) *Calculator {
	if cfg.StandardTariff.Currency == "" {
		cfg.StandardTariff.Currency = cfg.Currency
	}
	return &Calculator{routes: routes, cfg: cfg}
}

// CanCalculate reports whether the draft has a vehicle and coordinates for
// both ends of the trip.
func CanCalculate(d models.BookingDraft) bool {
	return d.Vehicle != nil && d.Vehicle.ID != "" &&
		d.Service.Pickup.Coordinates.Valid() &&
		d.Service.Dropoff.Coordinates.Valid()
}

// InputFromDraft builds the calculator input for a draft that passed
// CanCalculate.
func InputFromDraft(d models.BookingDraft, tariff models.Tariff) Input {
	return Input{
		Origin:          *d.Service.Pickup.Coordinates,
		Destination:     *d.Service.Dropoff.Coordinates,
		Tariff:          tariff,
		ServiceType:     d.Service.Type,
		DurationMinutes: d.DurationMinutes(),
	}
}

// StandardTariff returns the configured fallback tariff
func (c *Calculator) StandardTariff() models.Tariff {
	return c.cfg.StandardTariff
}

// ResolveTariff finds the vehicle's tariff in the availability result. The
// standard tariff is returned, with found=false, when the vehicle has none.
func (c *Calculator) ResolveTariff(vehicleID string, availability *models.AvailabilityResult) (tariff models.Tariff, found bool) {
	if availability != nil {
		if t, ok := availability.FindTariff(vehicleID); ok {
			return *t, true
		}
	}
	logger.Warn("No tariff for vehicle, using standard tariff",
		logger.String("vehicle_id", vehicleID),
		logger.Float64("base_fare", c.cfg.StandardTariff.BaseFare))
	return c.cfg.StandardTariff, false
}

// Calculate fetches the route and prices it
func (c *Calculator) Calculate(ctx context.Context, in Input) (models.PriceQuote, error) {
	var route *models.Route
	err := nrpkg.WithSegment(ctx, "pricing.route", func() error {
		var rerr error
		route, rerr = c.routes.Route(ctx, in.Origin, in.Destination)
		return rerr
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to get route for price calculation",
			logger.Float64("origin_lat", in.Origin.Lat),
			logger.Float64("origin_lng", in.Origin.Lng),
			logger.Float64("destination_lat", in.Destination.Lat),
			logger.Float64("destination_lng", in.Destination.Lng),
			logger.Err(err))
		return models.PriceQuote{}, fmt.Errorf("failed to get route: %w", err)
	}

	oneWayKm := Round2(route.DistanceMeters / 1000)
	durationMinutes := route.DurationSeconds / 60
	if in.ServiceType.IsRoundTrip() {
		durationMinutes *= 2
	}

	breakdown := c.Breakdown(in.Tariff, oneWayKm, in.ServiceType, in.DurationMinutes)
	return models.PriceQuote{
		RouteInfo: models.RouteInfo{
			OneWayDistanceKm: oneWayKm,
			TotalDistanceKm:  breakdown.TotalDistanceKm,
			DurationMinutes:  Round2(durationMinutes),
			IsRoundTrip:      breakdown.IsRoundTrip,
			Provider:         route.Provider,
		},
		PriceBreakdown: breakdown,
	}, nil
}

// Breakdown prices oneWayKm with tariff. Round trips drive the distance
// twice; hourly and full-day services add the per-hour rate to the
// distance charge.
func (c *Calculator) Breakdown(tariff models.Tariff, oneWayKm float64, serviceType models.ServiceType, durationMinutes int) models.PriceBreakdown {
	roundTrip := serviceType.IsRoundTrip()
	totalKm := oneWayKm
	if roundTrip {
		totalKm = Round2(oneWayKm * 2)
	}

	charge := tariff.PerKm * totalKm
	if serviceType.IsTimeBased() && durationMinutes > 0 {
		charge += tariff.PerHour * float64(durationMinutes) / 60
	}
	distanceCharge := Round2(charge)

	b := c.finish(tariff.BaseFare, distanceCharge, c.currency(tariff))
	b.TotalDistanceKm = totalKm
	b.IsRoundTrip = roundTrip
	if roundTrip {
		km := oneWayKm
		b.OneWayDistanceKm = &km
	}
	return b
}

// FixedRouteQuote prices a fixed route. The preset price is taken as the
// subtotal; tax is added on top.
func (c *Calculator) FixedRouteQuote(route models.FixedRoute, serviceType models.ServiceType) models.PriceQuote {
	roundTrip := serviceType.IsRoundTrip()
	price := route.Price
	oneWayKm := Round2(route.DistanceKm)
	totalKm := oneWayKm
	if roundTrip {
		price *= 2
		totalKm = Round2(oneWayKm * 2)
	}

	currency := route.Currency
	if currency == "" {
		currency = c.cfg.Currency
	}

	b := c.finish(Round2(price), 0, currency)
	b.TotalDistanceKm = totalKm
	b.IsRoundTrip = roundTrip
	if roundTrip {
		km := oneWayKm
		b.OneWayDistanceKm = &km
	}

	return models.PriceQuote{
		RouteInfo: models.RouteInfo{
			OneWayDistanceKm: oneWayKm,
			TotalDistanceKm:  totalKm,
			IsRoundTrip:      roundTrip,
			Provider:         "fixed_route",
		},
		PriceBreakdown: b,
	}
}

func (c *Calculator) finish(baseFare, distanceCharge float64, currency string) models.PriceBreakdown {
	subtotal := Round2(baseFare + distanceCharge)
	tax := Round2(subtotal * c.cfg.TaxPercentage / 100)
	return models.PriceBreakdown{
		BaseFare:       baseFare,
		DistanceCharge: distanceCharge,
		Subtotal:       subtotal,
		TaxPercentage:  c.cfg.TaxPercentage,
		TaxAmount:      tax,
		Total:          Round2(subtotal + tax),
		Currency:       currency,
	}
}

func (c *Calculator) currency(t models.Tariff) string {
	if t.Currency != "" {
		return t.Currency
	}
	return c.cfg.Currency
}

// Round2 rounds to cents
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
