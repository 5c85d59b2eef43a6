package usecase

import (
	"context"

	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
	"github.com/piresc/chauffeur/services/booking/pricing"
)

// CalculatePrice prices the current draft. A failure leaves the stored price
// as it was, which is either empty or still valid for the current draft, and
// the caller may retry.
func (uc *BookingUC) CalculatePrice(ctx context.Context, sessionID string) (*models.PriceQuote, error) {
	s, err := uc.openSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	d := s.store.Draft()
	if !pricing.CanCalculate(d) {
		return nil, booking.ErrCannotCalculate
	}

	var current *models.AvailabilityResult
	if a, ok := s.store.Availability(); ok {
		current = &a
	}
	tariff, _ := uc.calculator.ResolveTariff(d.Vehicle.ID, current)

	quote, err := uc.calculator.Calculate(ctx, pricing.InputFromDraft(d, tariff))
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to calculate price",
			logger.String("session_id", sessionID),
			logger.Err(err))
		return nil, err
	}

	// the draft may have moved on while the route was fetched
	if err := s.store.ApplyPrice(d.PriceKey(), quote); err != nil {
		logger.WarnCtx(ctx, "Discarding stale price",
			logger.String("session_id", sessionID),
			logger.Err(err))
		return nil, err
	}

	logger.InfoCtx(ctx, "Price calculated",
		logger.String("session_id", sessionID),
		logger.String("vehicle_id", d.Vehicle.ID),
		logger.Float64("total", quote.PriceBreakdown.Total))
	uc.broadcast(s, constants.EventPriceUpdated, quote)
	uc.persist(ctx, s)
	return &quote, nil
}
