package availability

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// Runner performs a single probe
type Runner interface {
	Probe(ctx context.Context, req ProbeRequest) models.AvailabilityResult
}

// SchedulerConfig tunes the auto-trigger
type SchedulerConfig struct {
	SettlingDelay time.Duration
	// RetriggerAfterProbe runs one more probe after an in-flight probe
	// finishes if a trigger was suppressed while it ran.
	RetriggerAfterProbe bool
}

// Task is a pending probe that has not fired yet
type Task struct {
	timer *time.Timer
}

// Cancel stops the task and reports whether it had not fired yet
func (t *Task) Cancel() bool {
	return t.timer.Stop()
}

// Scheduler debounces probe triggers for one session and makes sure only
// the newest probe's result is applied.
type Scheduler struct {
	runner Runner
	source func() ProbeRequest
	apply  func(models.AvailabilityResult)
	cfg    SchedulerConfig

	mu             sync.Mutex
	pending        *Task
	token          uint64
	inFlight       int
	suppressed     bool
	cancelInFlight context.CancelFunc
	closed         bool
	ctx            context.Context
	cancel         context.CancelFunc

	// serialises the latest-token check with apply
	applyMu sync.Mutex
}

// NewScheduler creates a scheduler. source reads the probe inputs at fire
// time; apply receives results that are still current.
func NewScheduler(runner Runner, source func() ProbeRequest, apply func(models.AvailabilityResult), cfg SchedulerConfig) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		runner: runner,
		source: source,
		apply:  apply,
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Trigger schedules a probe after the settling delay, replacing any pending
// one. It is a no-op while a probe is in flight.
func (s *Scheduler) Trigger() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.inFlight > 0 {
		if s.cfg.RetriggerAfterProbe {
			s.suppressed = true
		}
		return
	}
	s.scheduleLocked()
}

func (s *Scheduler) scheduleLocked() {
	if s.pending != nil {
		s.pending.Cancel()
	}
	task := &Task{}
	s.pending = task
	task.timer = time.AfterFunc(s.cfg.SettlingDelay, func() {
		s.fire(task)
	})
}

func (s *Scheduler) fire(task *Task) {
	s.mu.Lock()
	if s.closed || s.pending != task {
		// cancelled after the timer had already fired
		s.mu.Unlock()
		return
	}
	s.pending = nil
	ctx, token := s.beginLocked()
	s.mu.Unlock()

	s.run(ctx, token)
}

// ProbeNow cancels any pending trigger and probes immediately. The result
// is applied and returned; applied is false when a newer probe superseded
// it or the scheduler was closed.
func (s *Scheduler) ProbeNow(ctx context.Context) (result models.AvailabilityResult, applied bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return models.AvailabilityResult{}, false
	}
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
	probeCtx, token := s.beginLocked()
	s.mu.Unlock()

	// the caller's deadline applies in addition to session teardown
	stop := context.AfterFunc(ctx, s.cancelToken(token))
	defer stop()

	return s.run(probeCtx, token)
}

// beginLocked takes a new token and cancels the request of any older probe
func (s *Scheduler) beginLocked() (context.Context, uint64) {
	if s.cancelInFlight != nil {
		s.cancelInFlight()
	}
	s.token++
	s.inFlight++
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancelInFlight = cancel
	return ctx, s.token
}

// cancelToken aborts the request of token only while it is still the
// newest probe; a newer probe owns cancelInFlight otherwise.
func (s *Scheduler) cancelToken(token uint64) func() {
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.token == token && s.cancelInFlight != nil {
			s.cancelInFlight()
			s.cancelInFlight = nil
		}
	}
}

func (s *Scheduler) run(ctx context.Context, token uint64) (models.AvailabilityResult, bool) {
	result := s.runner.Probe(ctx, s.source())

	s.applyMu.Lock()
	s.mu.Lock()
	current := !s.closed && s.token == token
	s.mu.Unlock()
	if current {
		s.apply(result)
	} else {
		logger.Debug("Discarding superseded availability result", logger.Uint64("token", token))
	}
	s.applyMu.Unlock()

	s.mu.Lock()
	s.inFlight--
	if s.inFlight == 0 {
		if s.cancelInFlight != nil {
			s.cancelInFlight()
			s.cancelInFlight = nil
		}
		if s.suppressed && !s.closed {
			s.suppressed = false
			s.scheduleLocked()
		}
	}
	s.mu.Unlock()

	return result, current
}

// Pending reports whether a probe is scheduled but has not fired
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// InFlight reports whether a probe is running
func (s *Scheduler) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// Invalidate drops a pending trigger and any suppressed retrigger, and makes
// the result of an in-flight probe stale so it is never applied.
func (s *Scheduler) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
	s.token++
	s.suppressed = false
	if s.cancelInFlight != nil {
		s.cancelInFlight()
		s.cancelInFlight = nil
	}
}

// Close cancels the pending task and any in-flight request. Results that
// arrive afterwards are dropped.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
	s.cancel()
}
