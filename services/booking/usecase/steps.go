package usecase

import (
	"context"

	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
)

// NextStep validates the active step and advances when it is clean
func (uc *BookingUC) NextStep(ctx context.Context, sessionID string) (*models.StepResult, error) {
	s, err := uc.openSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	res := uc.validator.Next(s.store.ActiveStep(), s.store.Draft())
	return uc.moveTo(ctx, s, res), nil
}

// PreviousStep goes back one step without validating
func (uc *BookingUC) PreviousStep(ctx context.Context, sessionID string) (*models.StepResult, error) {
	s, err := uc.openSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	res := uc.validator.Previous(s.store.ActiveStep())
	return uc.moveTo(ctx, s, res), nil
}

// GoToStep jumps to a tab; forward jumps stop at the first invalid step
func (uc *BookingUC) GoToStep(ctx context.Context, sessionID string, step models.Step) (*models.StepResult, error) {
	if step.Index() < 0 {
		return nil, booking.ErrUnknownStep
	}
	s, err := uc.openSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	res := uc.validator.GoTo(s.store.ActiveStep(), step, s.store.Draft())
	return uc.moveTo(ctx, s, res), nil
}

func (uc *BookingUC) moveTo(ctx context.Context, s *session, res models.StepResult) *models.StepResult {
	s.store.SetActiveStep(res.ActiveStep)
	s.store.SetErrors(res.Errors)
	if res.Advanced {
		uc.broadcast(s, constants.EventStepChanged, res)
	}
	uc.persist(ctx, s)
	return &res
}
