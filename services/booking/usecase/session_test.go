package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
	"github.com/piresc/chauffeur/services/booking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	draftRepo      *mocks.MockDraftRepo
	submissionRepo *mocks.MockSubmissionRepo
	backend        *mocks.MockBackendGW
	places         *mocks.MockPlacesGW
	routes         *mocks.MockRouteGW
	events         *mocks.MockEventGW
	notifier       *mocks.MockSessionNotifier
}

func testConfig() *models.Config {
	return &models.Config{
		Places: models.PlacesConfig{Countries: []string{"es", "pt"}},
		Booking: models.BookingConfig{
			// long enough that debounced probes never fire unless a test
			// shortens it
			SettlingDelay:          time.Hour,
			DefaultDurationMinutes: 60,
			MinDurationMinutes:     60,
			TimeZone:               "UTC",
			Currency:               "EUR",
			SessionTTL:             30 * time.Minute,
		},
		Pricing: models.PricingConfig{
			TaxPercentage:  10,
			StandardTariff: models.Tariff{BaseFare: 50, PerKm: 2, PerHour: 45},
		},
	}
}

func setupUC(t *testing.T, mutate func(cfg *models.Config)) (*BookingUC, *testDeps) {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		draftRepo:      mocks.NewMockDraftRepo(ctrl),
		submissionRepo: mocks.NewMockSubmissionRepo(ctrl),
		backend:        mocks.NewMockBackendGW(ctrl),
		places:         mocks.NewMockPlacesGW(ctrl),
		routes:         mocks.NewMockRouteGW(ctrl),
		events:         mocks.NewMockEventGW(ctrl),
		notifier:       mocks.NewMockSessionNotifier(ctrl),
	}

	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}

	uc, err := NewBookingUC(cfg, deps.draftRepo, deps.submissionRepo, deps.backend,
		deps.places, deps.routes, deps.events, deps.notifier)
	require.NoError(t, err)

	ids := 0
	uc.newID = func() string {
		ids++
		return fmt.Sprintf("sess-%d", ids)
	}
	uc.now = func() time.Time { return time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(uc.Shutdown)

	return uc, deps
}

// startSession opens a session and allows any number of draft saves
func startSession(t *testing.T, uc *BookingUC, deps *testDeps) *session {
	deps.draftRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any(), 30*time.Minute).Return(nil).AnyTimes()

	state, err := uc.StartSession(context.Background())
	require.NoError(t, err)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.sessions[state.ID]
}

func TestNewBookingUC_InvalidTimeZone(t *testing.T) {
	cfg := testConfig()
	cfg.Booking.TimeZone = "Mars/Olympus"

	uc, err := NewBookingUC(cfg, nil, nil, nil, nil, nil, nil, nil)

	assert.Error(t, err)
	assert.Nil(t, uc)
}

func TestStartSession(t *testing.T) {
	uc, deps := setupUC(t, nil)

	deps.draftRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any(), 30*time.Minute).
		DoAndReturn(func(_ context.Context, state models.SessionState, _ time.Duration) error {
			assert.Equal(t, "sess-1", state.ID)
			assert.True(t, state.Open)
			assert.Equal(t, models.StepClient, state.ActiveStep)
			assert.Equal(t, models.ServiceOneWay, state.Draft.Service.Type)
			assert.Equal(t, "EUR", state.Draft.Payment.Currency)
			return nil
		})

	state, err := uc.StartSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "sess-1", state.ID)
	assert.Nil(t, state.Availability)
	assert.Contains(t, uc.sessions, "sess-1")
}

func TestStartSession_SaveFails(t *testing.T) {
	uc, deps := setupUC(t, nil)
	deps.draftRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	state, err := uc.StartSession(context.Background())

	assert.Error(t, err)
	assert.Nil(t, state)
	assert.Empty(t, uc.sessions)
}

func TestGetSession_Rehydrates(t *testing.T) {
	uc, deps := setupUC(t, nil)

	stored := &models.SessionState{
		ID:                  "sess-9",
		Draft:               models.NewBookingDraft("EUR"),
		ActiveStep:          models.StepDetails,
		Open:                true,
		LastReservationCode: "RSV-1",
		CreatedAt:           time.Date(2026, 9, 30, 8, 0, 0, 0, time.UTC),
	}
	stored.Draft.Client.Name = "Ana Garcia"
	deps.draftRepo.EXPECT().GetSession(gomock.Any(), "sess-9").Return(stored, nil).Times(1)

	state, err := uc.GetSession(context.Background(), "sess-9")
	require.NoError(t, err)
	assert.Equal(t, "Ana Garcia", state.Draft.Client.Name)
	assert.Equal(t, models.StepDetails, state.ActiveStep)
	assert.Equal(t, "RSV-1", state.LastReservationCode)
	assert.True(t, stored.CreatedAt.Equal(state.CreatedAt))

	// served from memory the second time
	_, err = uc.GetSession(context.Background(), "sess-9")
	require.NoError(t, err)
}

func TestGetSession_NotFound(t *testing.T) {
	uc, deps := setupUC(t, nil)
	deps.draftRepo.EXPECT().GetSession(gomock.Any(), "missing").Return(nil, booking.ErrSessionNotFound)

	_, err := uc.GetSession(context.Background(), "missing")

	assert.ErrorIs(t, err, booking.ErrSessionNotFound)
}

func TestCloseSession(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)

	deps.draftRepo.EXPECT().DeleteSession(gomock.Any(), s.id).Return(nil)

	require.NoError(t, uc.CloseSession(context.Background(), s.id))
	assert.NotContains(t, uc.sessions, s.id)

	// the closed scheduler no longer probes
	_, applied := s.scheduler.ProbeNow(context.Background())
	assert.False(t, applied)
}

func TestCloseSession_DeleteFails(t *testing.T) {
	uc, deps := setupUC(t, nil)
	deps.draftRepo.EXPECT().DeleteSession(gomock.Any(), "sess-x").Return(errors.New("redis down"))

	err := uc.CloseSession(context.Background(), "sess-x")

	assert.Error(t, err)
}

func TestOpenSession_Closed(t *testing.T) {
	uc, deps := setupUC(t, nil)
	s := startSession(t, uc, deps)
	s.store.SetOpen(false)

	_, err := uc.SetField(context.Background(), s.id, models.FieldEdit{Section: "client", Field: "name", Value: "Ana"})
	assert.ErrorIs(t, err, booking.ErrSessionClosed)

	_, err = uc.NextStep(context.Background(), s.id)
	assert.ErrorIs(t, err, booking.ErrSessionClosed)

	// reading is still allowed
	_, err = uc.GetSession(context.Background(), s.id)
	assert.NoError(t, err)
}

func TestEvictIdle(t *testing.T) {
	uc, deps := setupUC(t, nil)
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	now := base
	uc.now = func() time.Time { return now }

	idle := startSession(t, uc, deps)
	active := startSession(t, uc, deps)

	now = base.Add(20 * time.Minute)
	_, err := uc.GetSession(context.Background(), active.id)
	require.NoError(t, err)

	now = base.Add(31 * time.Minute)
	assert.Equal(t, 1, uc.EvictIdle())

	uc.mu.Lock()
	assert.NotContains(t, uc.sessions, idle.id)
	assert.Contains(t, uc.sessions, active.id)
	uc.mu.Unlock()

	// the evicted scheduler is closed
	idle.scheduler.Trigger()
	assert.False(t, idle.scheduler.Pending())

	// later requests go back to the draft store
	deps.draftRepo.EXPECT().GetSession(gomock.Any(), idle.id).Return(nil, booking.ErrSessionNotFound)
	_, err = uc.GetSession(context.Background(), idle.id)
	assert.ErrorIs(t, err, booking.ErrSessionNotFound)
}

func TestEvictIdle_DisabledWithoutTTL(t *testing.T) {
	uc, deps := setupUC(t, nil)
	startSession(t, uc, deps)
	uc.cfg.Booking.SessionTTL = 0

	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return base.Add(24 * time.Hour) }

	assert.Zero(t, uc.EvictIdle())
	assert.Len(t, uc.sessions, 1)
}

func TestRunEviction(t *testing.T) {
	uc, deps := setupUC(t, nil)
	startSession(t, uc, deps)

	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return base.Add(time.Hour) }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		uc.RunEviction(ctx, 5*time.Millisecond)
	}()

	require.Eventually(t, func() bool {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		return len(uc.sessions) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("eviction loop did not stop")
	}
}
