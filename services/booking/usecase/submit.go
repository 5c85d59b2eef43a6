package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
	"github.com/piresc/chauffeur/services/booking/submission"
)

// Submit closes the form and posts the reservation. On success the draft is
// reset; on failure the form reopens with the draft intact.
func (uc *BookingUC) Submit(ctx context.Context, sessionID string) (*models.SubmissionResult, error) {
	s, err := uc.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// close first so edits and a second submit are refused while posting
	s.mu.Lock()
	if !s.store.IsOpen() {
		s.mu.Unlock()
		return nil, booking.ErrSessionClosed
	}
	s.store.SetOpen(false)
	s.mu.Unlock()

	reservation, err := uc.submitter.Submit(ctx, sessionID, s.store.Draft())
	if err != nil {
		s.store.SetOpen(true)
		var verr *submission.ValidationError
		if errors.As(err, &verr) {
			res := models.StepResult{ActiveStep: verr.Step, Errors: verr.Errors}
			s.store.SetActiveStep(verr.Step)
			s.store.SetErrors(verr.Errors)
			uc.broadcast(s, constants.EventStepChanged, res)
		}
		uc.persist(ctx, s)
		return nil, err
	}

	// a probe still running for the submitted booking must not land in
	// the reset draft
	s.scheduler.Invalidate()
	s.store.Reset()
	s.mu.Lock()
	s.lastCode = reservation.Code
	s.mu.Unlock()

	result := &models.SubmissionResult{
		ReservationCode: reservation.Code,
		Message:         fmt.Sprintf("Reservation %s created", reservation.Code),
	}
	uc.broadcast(s, constants.EventSubmitted, result)
	uc.broadcast(s, constants.EventDraftReset, nil)
	uc.persist(ctx, s)
	return result, nil
}
