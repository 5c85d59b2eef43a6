package submission

import (
	"errors"
	"fmt"

	httpclient "github.com/piresc/chauffeur/internal/pkg/http"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking/validation"
)

// GenericFailureMessage is shown when the backend gave no usable reason
const GenericFailureMessage = "the reservation could not be created, please try again"

// ValidationError is returned when the draft fails revalidation before
// anything is sent.
type ValidationError struct {
	Step   models.Step
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %s has %d validation errors", e.Step, len(e.Errors))
}

func (e *ValidationError) Unwrap() error {
	return validation.ErrStepInvalid
}

// SubmissionError is returned when the backend rejected or never received
// the reservation. Message is safe to show to the user.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func newSubmissionError(err error) *SubmissionError {
	msg := GenericFailureMessage
	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		msg = apiErr.Detail
	}
	return &SubmissionError{Message: msg, Err: err}
}
