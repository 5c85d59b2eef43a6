package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	httpclient "github.com/piresc/chauffeur/internal/pkg/http"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
	"github.com/piresc/chauffeur/services/booking/submission"
	"github.com/piresc/chauffeur/services/booking/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillDraft(t *testing.T, uc *BookingUC, s *session) {
	for _, e := range []models.FieldEdit{
		edit("client", "name", "Ana Garcia"),
		edit("client", "email", "ana@example.com"),
		edit("client", "phone", "+34600111222"),
		edit("pickup", "date", "2026-11-02"),
		edit("pickup", "time", "09:30"),
		edit("pickup", "location", "Sants"),
		edit("pickup", "coordinates", []interface{}{41.379, 2.140}),
		edit("dropoff", "location", "El Prat T1"),
		edit("dropoff", "coordinates", []interface{}{41.289, 2.073}),
		edit("details", "passengers", 2),
		edit("details", "luggage", "2 suitcases"),
		edit("vehicle", "id", "v-1"),
		edit("payment", "amount", 88),
	} {
		_, err := uc.SetField(context.Background(), s.id, e)
		require.NoError(t, err)
	}
}

func TestNavigation(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)
	ctx := context.Background()

	res, err := uc.NextStep(ctx, s.id)
	require.NoError(t, err)
	assert.False(t, res.Advanced)
	assert.Equal(t, models.StepClient, res.ActiveStep)
	assert.Contains(t, res.Errors, validation.KeyClientEmail)
	assert.Contains(t, s.store.Errors(), validation.KeyClientEmail)

	for _, e := range []models.FieldEdit{
		edit("client", "name", "Ana Garcia"),
		edit("client", "email", "ana@example.com"),
		edit("client", "phone", "+34600111222"),
	} {
		_, err := uc.SetField(ctx, s.id, e)
		require.NoError(t, err)
	}

	deps.notifier.EXPECT().Broadcast(s.id, constants.EventStepChanged, gomock.Any()).Times(2)

	res, err = uc.NextStep(ctx, s.id)
	require.NoError(t, err)
	assert.True(t, res.Advanced)
	assert.Equal(t, models.StepService, s.store.ActiveStep())
	assert.Empty(t, s.store.Errors())

	res, err = uc.PreviousStep(ctx, s.id)
	require.NoError(t, err)
	assert.Equal(t, models.StepClient, res.ActiveStep)
}

func TestGoToStep(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)
	ctx := context.Background()

	_, err := uc.GoToStep(ctx, s.id, models.Step("summary"))
	assert.ErrorIs(t, err, booking.ErrUnknownStep)

	// the client step is empty, so the jump stops there
	res, err := uc.GoToStep(ctx, s.id, models.StepPayment)
	require.NoError(t, err)
	assert.False(t, res.Advanced)
	assert.Equal(t, models.StepClient, res.ActiveStep)
	assert.Contains(t, res.Errors, validation.KeyClientName)
}

func TestSubmit_Success(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)
	fillDraft(t, uc, s)

	deps.backend.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.ReservationPayload) (*models.Reservation, error) {
			assert.False(t, s.store.IsOpen())
			assert.Equal(t, "Ana Garcia", p.ClientName)
			assert.Equal(t, 88.0, p.Amount)
			return &models.Reservation{Code: "RSV-0041"}, nil
		})
	deps.submissionRepo.EXPECT().RecordSubmission(gomock.Any(), gomock.Any()).Return(nil)
	deps.events.EXPECT().PublishReservationCreated(gomock.Any(), gomock.Any()).Return(nil)
	gomock.InOrder(
		deps.notifier.EXPECT().Broadcast(s.id, constants.EventSubmitted, gomock.Any()),
		deps.notifier.EXPECT().Broadcast(s.id, constants.EventDraftReset, gomock.Nil()),
	)

	result, err := uc.Submit(context.Background(), s.id)

	require.NoError(t, err)
	assert.Equal(t, "RSV-0041", result.ReservationCode)

	state, err := uc.GetSession(context.Background(), s.id)
	require.NoError(t, err)
	assert.False(t, state.Open)
	assert.Equal(t, "RSV-0041", state.LastReservationCode)
	assert.Equal(t, models.NewBookingDraft("EUR"), state.Draft)
	assert.Equal(t, models.StepClient, state.ActiveStep)
	assert.False(t, s.scheduler.Pending())

	_, err = uc.Submit(context.Background(), s.id)
	assert.ErrorIs(t, err, booking.ErrSessionClosed)
}

func TestSubmit_InFlightAvailabilityDoesNotReachResetDraft(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)
	fillDraft(t, uc, s)

	started := make(chan struct{})
	release := make(chan struct{})
	deps.backend.EXPECT().SearchVehicles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.VehicleSearchRequest) (*models.VehicleSearchResponse, error) {
			close(started)
			<-release
			return &models.VehicleSearchResponse{
				SearchResults: models.VehicleSearchSummary{TotalVehiclesFound: 1, FlexibleVehiclesFound: 1},
				Vehicles:      []models.AvailableVehicle{{ID: "v-1", Name: "Sedan"}},
			}, nil
		})
	deps.backend.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
		Return(&models.Reservation{Code: "RSV-0042"}, nil)
	deps.submissionRepo.EXPECT().RecordSubmission(gomock.Any(), gomock.Any()).Return(nil)
	deps.events.EXPECT().PublishReservationCreated(gomock.Any(), gomock.Any()).Return(nil)
	deps.events.EXPECT().PublishAvailabilityProbed(gomock.Any(), gomock.Any()).Times(0)
	deps.notifier.EXPECT().Broadcast(s.id, constants.EventAvailabilityUpdated, gomock.Any()).Times(0)
	deps.notifier.EXPECT().Broadcast(s.id, constants.EventSubmitted, gomock.Any())
	deps.notifier.EXPECT().Broadcast(s.id, constants.EventDraftReset, gomock.Nil())

	probed := make(chan struct{})
	go func() {
		defer close(probed)
		_, _ = uc.ProbeAvailability(context.Background(), s.id)
	}()
	<-started

	_, err := uc.Submit(context.Background(), s.id)
	require.NoError(t, err)

	close(release)
	<-probed
	require.Eventually(t, func() bool { return !s.scheduler.InFlight() }, time.Second, 5*time.Millisecond)

	_, ok := s.store.Availability()
	assert.False(t, ok)
	assert.Equal(t, models.NewBookingDraft("EUR"), s.store.Draft())
}

func TestSubmit_BackendRejects(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)
	fillDraft(t, uc, s)

	deps.backend.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
		Return(nil, &httpclient.APIError{StatusCode: 400, Detail: "vehicle v-1 is no longer available"})
	deps.submissionRepo.EXPECT().RecordSubmission(gomock.Any(), gomock.Any()).Return(nil)
	deps.events.EXPECT().PublishSubmissionFailed(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.Submit(context.Background(), s.id)

	var subErr *submission.SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "vehicle v-1 is no longer available", subErr.Message)

	// the form is open again with everything still filled in
	assert.True(t, s.store.IsOpen())
	assert.Equal(t, "Ana Garcia", s.store.Draft().Client.Name)
	assert.Equal(t, 88.0, s.store.Draft().Payment.Amount)
}

func TestSubmit_InvalidDraft(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)
	s.store.SetActiveStep(models.StepPayment)

	deps.backend.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Times(0)
	deps.notifier.EXPECT().Broadcast(s.id, constants.EventStepChanged, gomock.Any())

	_, err := uc.Submit(context.Background(), s.id)

	assert.ErrorIs(t, err, validation.ErrStepInvalid)
	assert.True(t, s.store.IsOpen())
	assert.Equal(t, models.StepClient, s.store.ActiveStep())
	assert.Contains(t, s.store.Errors(), validation.KeyClientName)
}
