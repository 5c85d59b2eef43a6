package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ProbeRequest is the subset of the draft a probe depends on
type ProbeRequest struct {
	PickupAddress   string
	Coordinates     *models.Coordinates
	Date            string
	Time            string
	ServiceType     models.ServiceType
	DurationMinutes *int
}

// RequestFromDraft extracts the probe inputs from a draft
func RequestFromDraft(d models.BookingDraft) ProbeRequest {
	req := ProbeRequest{
		PickupAddress: d.Service.Pickup.Location,
		Coordinates:   d.Service.Pickup.Coordinates.Clone(),
		Date:          d.Service.Pickup.Date,
		Time:          d.Service.Pickup.Time,
		ServiceType:   d.Service.Type,
	}
	if d.Service.Duration != nil {
		v := *d.Service.Duration
		req.DurationMinutes = &v
	}
	return req
}

// Config holds the duration rules applied before probing
type Config struct {
	DefaultDurationMinutes int
	MinDurationMinutes     int
}

// Prober queries the booking backend for vehicles available at pickup
type Prober struct {
	backend booking.BackendGW
	cfg     Config
}

// NewProber creates a prober. Zero durations default to 60 minutes.
func NewProber(backend booking.BackendGW, cfg Config) *Prober {
	if cfg.DefaultDurationMinutes <= 0 {
		cfg.DefaultDurationMinutes = 60
	}
	if cfg.MinDurationMinutes <= 0 {
		cfg.MinDurationMinutes = 60
	}
	return &Prober{backend: backend, cfg: cfg}
}

// Probe returns the vehicles available for req. It never fails: missing
// inputs and backend errors produce a zero-vehicle result with a message.
func (p *Prober) Probe(ctx context.Context, req ProbeRequest) models.AvailabilityResult {
	if msg := checkPreconditions(req); msg != "" {
		return models.EmptyAvailability(msg)
	}

	duration, ok := p.resolveDuration(req)
	if !ok {
		return models.EmptyAvailability(DurationTooShortMessage(p.cfg.MinDurationMinutes))
	}

	search := models.VehicleSearchRequest{
		PickupAddress:     pickupAddress(req),
		PickupDate:        req.Date,
		PickupTime:        req.Time,
		EstimatedDuration: duration,
	}

	resp, err := p.backend.SearchVehicles(ctx, search)
	if err != nil {
		msg := DescribeError(err)
		logger.WarnCtx(ctx, "Vehicle availability search failed",
			logger.String("pickup_date", req.Date),
			logger.String("pickup_time", req.Time),
			logger.String("message", msg),
			logger.Err(err))
		return models.EmptyAvailability(msg)
	}

	return shapeResult(resp)
}

// resolveDuration returns the duration sent to the backend. Time-based
// services must carry their own; other services use the default, which is
// not written back into the draft.
func (p *Prober) resolveDuration(req ProbeRequest) (int, bool) {
	if req.ServiceType.IsTimeBased() {
		if req.DurationMinutes == nil || *req.DurationMinutes < p.cfg.MinDurationMinutes {
			return 0, false
		}
		return *req.DurationMinutes, true
	}
	return p.cfg.DefaultDurationMinutes, true
}

func checkPreconditions(req ProbeRequest) string {
	if !req.Coordinates.Valid() {
		return MsgMissingCoordinates
	}
	if req.Date == "" || req.Time == "" {
		return MsgMissingSchedule
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return MsgInvalidSchedule
	}
	if _, err := time.Parse(timeLayout, req.Time); err != nil {
		return MsgInvalidSchedule
	}
	return ""
}

func pickupAddress(req ProbeRequest) string {
	if req.PickupAddress != "" {
		return req.PickupAddress
	}
	return fmt.Sprintf("%f,%f", req.Coordinates.Lat, req.Coordinates.Lng)
}

func shapeResult(resp *models.VehicleSearchResponse) models.AvailabilityResult {
	if resp == nil {
		return models.EmptyAvailability(MsgNoVehicles)
	}

	vehicles := resp.Vehicles
	if vehicles == nil {
		vehicles = []models.AvailableVehicle{}
	}

	result := models.AvailabilityResult{
		TotalVehiclesFound:               len(vehicles),
		FixedZoneCount:                   resp.SearchResults.ZonesFound,
		FlexibleRouteCount:               resp.SearchResults.FlexibleVehiclesFound,
		AvailableVehicles:                vehicles,
		VehiclesWithAlternativeSchedules: resp.VehiclesWithAlternativeSchedules,
	}
	if resp.SearchResults.TotalVehiclesFound != len(vehicles) {
		logger.Warn("Vehicle count reported by backend differs from vehicles returned",
			logger.Int("reported", resp.SearchResults.TotalVehiclesFound),
			logger.Int("returned", len(vehicles)))
	}
	if len(vehicles) == 0 && len(resp.VehiclesWithAlternativeSchedules) == 0 {
		result.Message = MsgNoVehicles
	}
	return result
}

// ExtendedHoursVehicle builds the synthetic entry appended when a vehicle is
// booked outside its regular schedule. It carries the fallback tariff so
// the price can still be computed.
func ExtendedHoursVehicle(ref models.Ref, tariff models.Tariff) models.AvailableVehicle {
	t := tariff
	return models.AvailableVehicle{
		ID:            ref.ID,
		Name:          ref.Name,
		Tariff:        &t,
		ExtendedHours: true,
	}
}
