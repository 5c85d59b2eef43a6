package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking/availability"
	"github.com/piresc/chauffeur/services/booking/form"
)

// applyAvailability stores a current probe result and fans it out. It runs
// on the scheduler's goroutine for debounced probes.
func (uc *BookingUC) applyAvailability(s *session, result models.AvailabilityResult) {
	s.store.SetAvailability(result)

	ctx := context.Background()
	uc.persist(ctx, s)
	uc.broadcast(s, constants.EventAvailabilityUpdated, result)

	if uc.eventGW == nil {
		return
	}
	event := models.AvailabilityProbedEvent{
		EventID:       uc.newID(),
		SessionID:     s.id,
		PickupAddress: s.store.Draft().Service.Pickup.Location,
		VehiclesFound: result.TotalVehiclesFound,
		Message:       result.Message,
		ProbedAt:      uc.now(),
	}
	if err := uc.eventGW.PublishAvailabilityProbed(ctx, event); err != nil {
		logger.Warn("Failed to publish availability probed event",
			logger.String("session_id", s.id),
			logger.Err(err))
	}
}

// ProbeAvailability runs a probe right away, superseding any scheduled or
// in-flight one.
func (uc *BookingUC) ProbeAvailability(ctx context.Context, sessionID string) (*models.AvailabilityResult, error) {
	s, err := uc.openSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, applied := s.scheduler.ProbeNow(ctx)
	if !applied {
		// a newer probe won; report what the session holds now
		if current, ok := s.store.Availability(); ok {
			return &current, nil
		}
	}
	return &result, nil
}

// AddExtendedHoursVehicle offers a vehicle outside its regular schedule by
// appending it to the availability with the standard tariff.
func (uc *BookingUC) AddExtendedHoursVehicle(ctx context.Context, sessionID string, vehicle models.Ref) (*models.AvailabilityResult, error) {
	if vehicle.ID == "" {
		return nil, fmt.Errorf("vehicle id: %w", form.ErrInvalidValue)
	}

	s, err := uc.openSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entry := availability.ExtendedHoursVehicle(vehicle, uc.calculator.StandardTariff())
	result := s.store.AppendAvailableVehicle(entry)

	logger.InfoCtx(ctx, "Extended hours vehicle added",
		logger.String("session_id", sessionID),
		logger.String("vehicle_id", vehicle.ID))
	uc.broadcast(s, constants.EventAvailabilityUpdated, result)
	uc.persist(ctx, s)
	return &result, nil
}
