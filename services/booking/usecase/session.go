package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
	"github.com/piresc/chauffeur/services/booking/availability"
	"github.com/piresc/chauffeur/services/booking/form"
)

// session is one open booking form with its probe scheduler
type session struct {
	id        string
	store     *form.Store
	scheduler *availability.Scheduler
	unwatch   func()
	createdAt time.Time

	// lastSeen is guarded by BookingUC.mu
	lastSeen time.Time

	mu       sync.Mutex
	lastCode string
}

func (s *session) close() {
	s.unwatch()
	s.scheduler.Close()
}

// newSession wires a store to its own scheduler: changes to the probe
// fields trigger a debounced probe whose result flows back into the store.
func (uc *BookingUC) newSession(id string, store *form.Store, createdAt time.Time) *session {
	s := &session{id: id, store: store, createdAt: createdAt, lastSeen: uc.now()}
	s.scheduler = availability.NewScheduler(
		uc.prober,
		func() availability.ProbeRequest {
			return availability.RequestFromDraft(store.Draft())
		},
		func(result models.AvailabilityResult) {
			uc.applyAvailability(s, result)
		},
		availability.SchedulerConfig{
			SettlingDelay:       uc.cfg.Booking.SettlingDelay,
			RetriggerAfterProbe: uc.cfg.Booking.RetriggerAfterProbe,
		},
	)
	s.unwatch = store.Watch(form.ProbeFields, func(string) {
		s.scheduler.Trigger()
	})
	return s
}

func (uc *BookingUC) state(s *session) models.SessionState {
	snap := s.store.Snapshot()
	s.mu.Lock()
	code := s.lastCode
	s.mu.Unlock()

	return models.SessionState{
		ID:                  s.id,
		Draft:               snap.Draft,
		ActiveStep:          snap.ActiveStep,
		Errors:              snap.Errors,
		Availability:        snap.Availability,
		Open:                snap.Open,
		LastReservationCode: code,
		CreatedAt:           s.createdAt,
		UpdatedAt:           uc.now(),
	}
}

// persist saves the session. The in-memory copy stays authoritative, so
// failures are only logged.
func (uc *BookingUC) persist(ctx context.Context, s *session) models.SessionState {
	state := uc.state(s)
	if err := uc.draftRepo.SaveSession(ctx, state, uc.cfg.Booking.SessionTTL); err != nil {
		logger.WarnCtx(ctx, "Failed to persist booking session",
			logger.String("session_id", s.id),
			logger.Err(err))
	}
	return state
}

func (uc *BookingUC) broadcast(s *session, event string, data interface{}) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Broadcast(s.id, event, data)
}

// lookup returns the live session, rehydrating it from the draft store when
// this instance does not hold it.
func (uc *BookingUC) lookup(ctx context.Context, sessionID string) (*session, error) {
	uc.mu.Lock()
	s, ok := uc.sessions[sessionID]
	if ok {
		s.lastSeen = uc.now()
	}
	uc.mu.Unlock()
	if ok {
		return s, nil
	}

	state, err := uc.draftRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	store := form.Restore(uc.cfg.Booking.Currency, form.Snapshot{
		Draft:        state.Draft,
		Availability: state.Availability,
		ActiveStep:   state.ActiveStep,
		Errors:       state.Errors,
		Open:         state.Open,
	})
	restored := uc.newSession(state.ID, store, state.CreatedAt)
	restored.lastCode = state.LastReservationCode

	uc.mu.Lock()
	if existing, ok := uc.sessions[sessionID]; ok {
		existing.lastSeen = uc.now()
		uc.mu.Unlock()
		restored.close()
		return existing, nil
	}
	uc.sessions[sessionID] = restored
	uc.mu.Unlock()

	logger.InfoCtx(ctx, "Rehydrated booking session", logger.String("session_id", sessionID))
	return restored, nil
}

// openSession is lookup for operations that edit the form
func (uc *BookingUC) openSession(ctx context.Context, sessionID string) (*session, error) {
	s, err := uc.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !s.store.IsOpen() {
		return nil, booking.ErrSessionClosed
	}
	return s, nil
}

// StartSession opens a new booking form with an empty draft
func (uc *BookingUC) StartSession(ctx context.Context) (*models.SessionState, error) {
	store := form.NewStore(uc.cfg.Booking.Currency)
	store.SetOpen(true)
	s := uc.newSession(uc.newID(), store, uc.now())

	state := uc.state(s)
	if err := uc.draftRepo.SaveSession(ctx, state, uc.cfg.Booking.SessionTTL); err != nil {
		s.close()
		logger.ErrorCtx(ctx, "Failed to save new booking session", logger.Err(err))
		return nil, err
	}

	uc.mu.Lock()
	uc.sessions[s.id] = s
	uc.mu.Unlock()

	logger.InfoCtx(ctx, "Booking session started", logger.String("session_id", s.id))
	return &state, nil
}

// GetSession returns the current state of a session
func (uc *BookingUC) GetSession(ctx context.Context, sessionID string) (*models.SessionState, error) {
	s, err := uc.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state := uc.state(s)
	return &state, nil
}

// CloseSession tears the session down: the pending probe is cancelled, any
// in-flight probe result is dropped and the draft is deleted.
func (uc *BookingUC) CloseSession(ctx context.Context, sessionID string) error {
	uc.mu.Lock()
	s, ok := uc.sessions[sessionID]
	delete(uc.sessions, sessionID)
	uc.mu.Unlock()

	if ok {
		s.close()
	}

	if err := uc.draftRepo.DeleteSession(ctx, sessionID); err != nil {
		logger.ErrorCtx(ctx, "Failed to delete booking session",
			logger.String("session_id", sessionID),
			logger.Err(err))
		return err
	}
	logger.InfoCtx(ctx, "Booking session closed", logger.String("session_id", sessionID))
	return nil
}

// Shutdown closes every live session's scheduler. Drafts stay in Redis so
// another instance can pick them up.
func (uc *BookingUC) Shutdown() {
	uc.mu.Lock()
	sessions := uc.sessions
	uc.sessions = map[string]*session{}
	uc.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
	logger.Info("Booking sessions released", logger.Int("count", len(sessions)))
}

// EvictIdle releases sessions not used within the session TTL. Their drafts
// stay in Redis until the TTL expires there, so a late request rehydrates.
func (uc *BookingUC) EvictIdle() int {
	ttl := uc.cfg.Booking.SessionTTL
	if ttl <= 0 {
		return 0
	}

	now := uc.now()
	var idle []*session
	uc.mu.Lock()
	for id, s := range uc.sessions {
		if now.Sub(s.lastSeen) > ttl {
			idle = append(idle, s)
			delete(uc.sessions, id)
		}
	}
	uc.mu.Unlock()

	for _, s := range idle {
		s.close()
	}
	if len(idle) > 0 {
		logger.Info("Evicted idle booking sessions", logger.Int("count", len(idle)))
	}
	return len(idle)
}

// RunEviction calls EvictIdle every interval until ctx is done
func (uc *BookingUC) RunEviction(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			uc.EvictIdle()
		case <-ctx.Done():
			logger.Info("Stopping idle session eviction")
			return
		}
	}
}
