package submission

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
	"github.com/piresc/chauffeur/services/booking/validation"
)

// Coordinator validates a finished draft and creates the reservation
type Coordinator struct {
	backend     booking.BackendGW
	events      booking.EventGW
	submissions booking.SubmissionRepo
	validator   *validation.StepValidator
	location    *time.Location
	now         func() time.Time
	marshal     func(v interface{}) ([]byte, error)
}

// NewCoordinator creates a coordinator. events and submissions are
// optional; pickup times are interpreted in loc.
func NewCoordinator(
	backend booking.BackendGW,
	events booking.EventGW,
	submissions booking.SubmissionRepo,
	validator *validation.StepValidator,
	loc *time.Location,
) *Coordinator {
	if loc == nil {
		loc = time.UTC
	}
	return &Coordinator{
		backend:     backend,
		events:      events,
		submissions: submissions,
		validator:   validator,
		location:    loc,
		now:         time.Now,
		marshal:     json.Marshal,
	}
}

// Submit revalidates every step, posts the reservation and returns it. The
// draft is never modified; on failure the caller keeps it for a retry.
func (c *Coordinator) Submit(ctx context.Context, sessionID string, d models.BookingDraft) (*models.Reservation, error) {
	if step, errs := c.validator.ValidateAll(d); len(errs) > 0 {
		return nil, &ValidationError{Step: step, Errors: errs}
	}

	payload, err := BuildPayload(d, c.location)
	if err != nil {
		return nil, &ValidationError{
			Step:   models.StepService,
			Errors: map[string]string{validation.KeyPickupDate: err.Error()},
		}
	}
	body := c.encode(ctx, sessionID, payload)

	reservation, err := c.backend.CreateReservation(ctx, payload)
	if err != nil {
		subErr := newSubmissionError(err)
		logger.ErrorCtx(ctx, "Failed to create reservation",
			logger.String("session_id", sessionID),
			logger.String("message", subErr.Message),
			logger.Err(err))
		c.record(ctx, sessionID, models.SubmissionFailed, body, nil, &subErr.Message)
		c.publishFailure(ctx, sessionID, payload.ServiceType, subErr.Message)
		return nil, subErr
	}

	logger.InfoCtx(ctx, "Reservation created",
		logger.String("session_id", sessionID),
		logger.String("reservation_code", reservation.Code))

	code := reservation.Code
	c.record(ctx, sessionID, models.SubmissionSucceeded, body, &code, nil)
	c.publish(ctx, sessionID, reservation, payload)
	return reservation, nil
}

// encode renders the payload for the submission record. The column is
// NOT NULL, so an unencodable payload is stored as an empty object.
func (c *Coordinator) encode(ctx context.Context, sessionID string, payload models.ReservationPayload) []byte {
	body, err := c.marshal(payload)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to encode reservation payload for submission record",
			logger.String("session_id", sessionID),
			logger.Err(err))
		return []byte("{}")
	}
	return body
}

func (c *Coordinator) record(ctx context.Context, sessionID, status string, payload []byte, code, errMsg *string) {
	if c.submissions == nil {
		return
	}
	rec := &models.SubmissionRecord{
		ID:              uuid.New().String(),
		SessionID:       sessionID,
		ReservationCode: code,
		Status:          status,
		Payload:         payload,
		ErrorMessage:    errMsg,
		CreatedAt:       c.now().UTC(),
	}
	if err := c.submissions.RecordSubmission(ctx, rec); err != nil {
		logger.WarnCtx(ctx, "Failed to record submission",
			logger.String("session_id", sessionID),
			logger.String("status", status),
			logger.Err(err))
	}
}

func (c *Coordinator) publish(ctx context.Context, sessionID string, r *models.Reservation, p models.ReservationPayload) {
	if c.events == nil {
		return
	}
	event := models.ReservationCreatedEvent{
		EventID:         uuid.New().String(),
		SessionID:       sessionID,
		ReservationCode: r.Code,
		ServiceType:     p.ServiceType,
		VehicleID:       p.VehicleID,
		Amount:          p.Amount,
		Currency:        p.Currency,
		PickupDateTime:  p.PickupDateTime,
		CreatedAt:       c.now().UTC(),
	}
	if err := c.events.PublishReservationCreated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish reservation created event",
			logger.String("session_id", sessionID),
			logger.String("reservation_code", r.Code),
			logger.Err(err))
	}
}

func (c *Coordinator) publishFailure(ctx context.Context, sessionID string, serviceType models.ServiceType, message string) {
	if c.events == nil {
		return
	}
	event := models.SubmissionFailedEvent{
		EventID:   uuid.New().String(),
		SessionID: sessionID,
		Service:   serviceType,
		Message:   message,
		FailedAt:  c.now().UTC(),
	}
	if err := c.events.PublishSubmissionFailed(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish submission failed event",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}
}
