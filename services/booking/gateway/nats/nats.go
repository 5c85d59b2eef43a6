package nats

import (
	"context"
	"fmt"

	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	natspkg "github.com/piresc/chauffeur/internal/pkg/nats"
	"github.com/piresc/chauffeur/services/booking"
)

// NATSGateway publishes booking events
type NATSGateway struct {
	natsClient *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway instance
func NewNATSGateway(client *natspkg.Client) booking.EventGW {
	return &NATSGateway{
		natsClient: client,
	}
}

// PublishReservationCreated announces a reservation created from a session
func (g *NATSGateway) PublishReservationCreated(ctx context.Context, event models.ReservationCreatedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectReservationCreated, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish reservation created event",
			logger.String("session_id", event.SessionID),
			logger.String("reservation_code", event.ReservationCode),
			logger.Err(err))
		return fmt.Errorf("failed to publish reservation created event: %w", err)
	}

	logger.InfoCtx(ctx, "Published reservation created event",
		logger.String("session_id", event.SessionID),
		logger.String("reservation_code", event.ReservationCode))
	return nil
}

// PublishSubmissionFailed announces a rejected submission
func (g *NATSGateway) PublishSubmissionFailed(ctx context.Context, event models.SubmissionFailedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectSubmissionFailed, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish submission failed event",
			logger.String("session_id", event.SessionID),
			logger.Err(err))
		return fmt.Errorf("failed to publish submission failed event: %w", err)
	}
	return nil
}

// PublishAvailabilityProbed announces the outcome of an applied probe
func (g *NATSGateway) PublishAvailabilityProbed(ctx context.Context, event models.AvailabilityProbedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectAvailabilityProbed, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish availability probed event",
			logger.String("session_id", event.SessionID),
			logger.Err(err))
		return fmt.Errorf("failed to publish availability probed event: %w", err)
	}
	return nil
}
