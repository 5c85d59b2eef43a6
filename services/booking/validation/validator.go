package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// ErrStepInvalid is returned when navigation is blocked by validation errors
var ErrStepInvalid = errors.New("step has validation errors")

// Error keys, "section.field"
const (
	KeyClientName        = "client.name"
	KeyClientEmail       = "client.email"
	KeyClientPhone       = "client.phone"
	KeyPickupDate        = "pickup.date"
	KeyPickupTime        = "pickup.time"
	KeyPickupLocation    = "pickup.location"
	KeyDropoffLocation   = "dropoff.location"
	KeyServiceDuration   = "service.duration"
	KeyDetailsPassengers = "details.passengers"
	KeyDetailsLuggage    = "details.luggage"
	KeyPaymentAmount     = "payment.amount"
)

// StepValidator checks the draft one form step at a time
type StepValidator struct {
	validate           *validator.Validate
	minDurationMinutes int
}

// NewStepValidator creates a validator; time-based services need at least
// minDurationMinutes.
func NewStepValidator(minDurationMinutes int) *StepValidator {
	if minDurationMinutes <= 0 {
		minDurationMinutes = 60
	}
	return &StepValidator{
		validate:           validator.New(),
		minDurationMinutes: minDurationMinutes,
	}
}

// Validate returns the errors of one step keyed by field. An empty map
// means the step is complete.
func (v *StepValidator) Validate(step models.Step, d models.BookingDraft) map[string]string {
	errs := map[string]string{}
	switch step {
	case models.StepClient:
		v.validateClient(d, errs)
	case models.StepService:
		v.validateService(d, errs)
	case models.StepDetails:
		v.validateDetails(d, errs)
	case models.StepPayment:
		v.validatePayment(d, errs)
	}
	return errs
}

// ValidateFormTab reports whether step has no errors
func (v *StepValidator) ValidateFormTab(step models.Step, d models.BookingDraft) bool {
	return len(v.Validate(step, d)) == 0
}

// ValidateAll validates every step and merges the errors. The first step
// with errors is returned alongside.
func (v *StepValidator) ValidateAll(d models.BookingDraft) (models.Step, map[string]string) {
	var first models.Step
	all := map[string]string{}
	for _, step := range models.Steps {
		errs := v.Validate(step, d)
		if len(errs) > 0 && first == "" {
			first = step
		}
		for k, msg := range errs {
			all[k] = msg
		}
	}
	return first, all
}

func (v *StepValidator) validateClient(d models.BookingDraft, errs map[string]string) {
	if strings.TrimSpace(d.Client.Name) == "" {
		errs[KeyClientName] = "Name is required"
	}
	email := strings.TrimSpace(d.Client.Email)
	switch {
	case email == "":
		errs[KeyClientEmail] = "Email is required"
	case v.validate.Var(email, "email") != nil:
		errs[KeyClientEmail] = "Email is not valid"
	}
	if strings.TrimSpace(d.Client.Phone) == "" {
		errs[KeyClientPhone] = "Phone is required"
	}
}

func (v *StepValidator) validateService(d models.BookingDraft, errs map[string]string) {
	pickup := d.Service.Pickup
	switch {
	case pickup.Date == "":
		errs[KeyPickupDate] = "Pickup date is required"
	case !validLayout("2006-01-02", pickup.Date):
		errs[KeyPickupDate] = "Pickup date must be YYYY-MM-DD"
	}
	switch {
	case pickup.Time == "":
		errs[KeyPickupTime] = "Pickup time is required"
	case !validLayout("15:04", pickup.Time):
		errs[KeyPickupTime] = "Pickup time must be HH:MM"
	}
	if strings.TrimSpace(pickup.Location) == "" {
		errs[KeyPickupLocation] = "Pickup location is required"
	}
	if d.Service.Type.RequiresDropoff() && strings.TrimSpace(d.Service.Dropoff.Location) == "" {
		errs[KeyDropoffLocation] = "Dropoff location is required"
	}
	if d.Service.Type.IsTimeBased() && d.DurationMinutes() < v.minDurationMinutes {
		errs[KeyServiceDuration] = fmt.Sprintf("duration must be at least %d minutes", v.minDurationMinutes)
	}
}

func (v *StepValidator) validateDetails(d models.BookingDraft, errs map[string]string) {
	if d.Details.Passengers <= 0 {
		errs[KeyDetailsPassengers] = "At least one passenger is required"
	}
	if strings.TrimSpace(d.Details.Luggage) == "" {
		errs[KeyDetailsLuggage] = "Luggage description is required"
	}
}

func (v *StepValidator) validatePayment(d models.BookingDraft, errs map[string]string) {
	if d.Payment.Amount <= 0 {
		errs[KeyPaymentAmount] = "Amount must be greater than zero"
	}
}

func validLayout(layout, value string) bool {
	_, err := time.Parse(layout, value)
	return err == nil
}
