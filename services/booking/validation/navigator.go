package validation

import (
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// Next validates the current step and moves forward when it is clean. On
// the last step it stays put.
func (v *StepValidator) Next(current models.Step, d models.BookingDraft) models.StepResult {
	errs := v.Validate(current, d)
	if len(errs) > 0 {
		return models.StepResult{ActiveStep: current, Errors: errs}
	}
	i := current.Index()
	if i < 0 || i == len(models.Steps)-1 {
		return models.StepResult{ActiveStep: current}
	}
	return models.StepResult{Advanced: true, ActiveStep: models.Steps[i+1]}
}

// Previous moves back one step without validating
func (v *StepValidator) Previous(current models.Step) models.StepResult {
	i := current.Index()
	if i <= 0 {
		return models.StepResult{ActiveStep: models.StepClient}
	}
	return models.StepResult{Advanced: true, ActiveStep: models.Steps[i-1]}
}

// GoTo moves to target. Backward moves are free; forward moves validate
// every step from current up to target and stop at the first invalid one.
func (v *StepValidator) GoTo(current, target models.Step, d models.BookingDraft) models.StepResult {
	from, to := current.Index(), target.Index()
	if to < 0 || from < 0 {
		return models.StepResult{ActiveStep: current}
	}
	if to <= from {
		return models.StepResult{Advanced: to != from, ActiveStep: target}
	}
	for i := from; i < to; i++ {
		step := models.Steps[i]
		if errs := v.Validate(step, d); len(errs) > 0 {
			return models.StepResult{Advanced: i != from, ActiveStep: step, Errors: errs}
		}
	}
	return models.StepResult{Advanced: true, ActiveStep: target}
}
