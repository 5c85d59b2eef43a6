package form

import (
	"errors"
	"fmt"
	"sync"

	"github.com/piresc/chauffeur/internal/pkg/models"
)

// ErrStalePrice is returned when a quote was computed for inputs that have
// since changed.
var ErrStalePrice = errors.New("price quote no longer matches the draft")

// Result reports what a SetField call did
type Result struct {
	// Applied is false for unknown section/field pairs, which are ignored
	Applied      bool
	Changed      bool
	PriceCleared bool
}

// Snapshot is a consistent copy of the store's state
type Snapshot struct {
	Draft        models.BookingDraft
	Availability *models.AvailabilityResult
	ActiveStep   models.Step
	Errors       map[string]string
	Open         bool
}

// WatchFunc is called after a watched field changed, outside the store lock
type WatchFunc func(field string)

type watcher struct {
	fields map[string]bool
	fn     WatchFunc
}

// Store holds one booking draft plus its UI state. All methods are safe for
// concurrent use.
type Store struct {
	mu           sync.Mutex
	currency     string
	draft        models.BookingDraft
	availability *models.AvailabilityResult
	activeStep   models.Step
	errors       map[string]string
	open         bool
	watchers     map[int]watcher
	nextWatcher  int
}

// NewStore returns a store holding an empty draft
func NewStore(currency string) *Store {
	return &Store{
		currency:   currency,
		draft:      models.NewBookingDraft(currency),
		activeStep: models.StepClient,
		errors:     map[string]string{},
		watchers:   map[int]watcher{},
	}
}

// Restore rebuilds a store from a persisted snapshot
func Restore(currency string, snap Snapshot) *Store {
	s := NewStore(currency)
	s.draft = snap.Draft.Clone()
	if s.draft.Details.SpecialRequests == nil {
		s.draft.Details.SpecialRequests = []string{}
	}
	if snap.Availability != nil {
		a := snap.Availability.Clone()
		s.availability = &a
	}
	if snap.ActiveStep.Index() >= 0 {
		s.activeStep = snap.ActiveStep
	}
	s.errors = copyErrors(snap.Errors)
	s.open = snap.Open
	return s
}

// SetField writes one field of the draft. Unknown section/field pairs are
// ignored. Changes to location, service type or vehicle drop the price, and
// so does the duration of a time-based service.
func (s *Store) SetField(section, field string, value interface{}) (Result, error) {
	key := section + "." + field
	set, ok := setters[key]
	if !ok {
		return Result{}, nil
	}

	s.mu.Lock()
	changed, err := set(&s.draft, value)
	if err != nil {
		s.mu.Unlock()
		return Result{Applied: true}, fmt.Errorf("%s: %w", key, err)
	}

	res := Result{Applied: true, Changed: changed}
	var notify []WatchFunc
	if changed {
		if priceFields[key] || (key == FieldServiceDuration && s.draft.Service.Type.IsTimeBased()) {
			res.PriceCleared = s.clearPriceLocked()
		}
		notify = s.watchersLocked(key)
	}
	s.mu.Unlock()

	for _, fn := range notify {
		fn(key)
	}
	return res, nil
}

// Watch registers fn for changes to any of fields and returns a function
// that removes the registration.
func (s *Store) Watch(fields []string, fn WatchFunc) (cancel func()) {
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}

	s.mu.Lock()
	id := s.nextWatcher
	s.nextWatcher++
	s.watchers[id] = watcher{fields: set, fn: fn}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

func (s *Store) watchersLocked(key string) []WatchFunc {
	var out []WatchFunc
	for _, w := range s.watchers {
		if w.fields[key] {
			out = append(out, w.fn)
		}
	}
	return out
}

// clearPriceLocked drops breakdown and route info and reports whether there
// was anything to drop.
func (s *Store) clearPriceLocked() bool {
	p := &s.draft.Payment
	if p.PriceBreakdown == nil && p.RouteInfo == nil {
		return false
	}
	p.PriceBreakdown = nil
	p.RouteInfo = nil
	p.Amount = 0
	return true
}

// Draft returns a copy of the current draft
func (s *Store) Draft() models.BookingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

// Snapshot returns a copy of the whole state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Draft:      s.draft.Clone(),
		ActiveStep: s.activeStep,
		Errors:     copyErrors(s.errors),
		Open:       s.open,
	}
	if s.availability != nil {
		a := s.availability.Clone()
		snap.Availability = &a
	}
	return snap
}

// ApplyPrice stores a quote computed for key. It is rejected with
// ErrStalePrice when the draft moved on while the quote was computed.
func (s *Store) ApplyPrice(key models.PriceKey, quote models.PriceQuote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.draft.PriceKey().Equal(key) {
		return ErrStalePrice
	}
	s.applyQuoteLocked(quote)
	return nil
}

func (s *Store) applyQuoteLocked(quote models.PriceQuote) {
	breakdown := quote.PriceBreakdown
	info := quote.RouteInfo
	s.draft.Payment.PriceBreakdown = &breakdown
	s.draft.Payment.RouteInfo = &info
	s.draft.Payment.Amount = breakdown.Total
	if breakdown.Currency != "" {
		s.draft.Payment.Currency = breakdown.Currency
	}
}

// ApplyFixedRoute copies a fixed route's endpoints and vehicle into the
// draft and stores its preset price.
func (s *Store) ApplyFixedRoute(route models.FixedRoute, quote models.PriceQuote) {
	s.mu.Lock()
	before := s.draft.Clone()

	d := &s.draft
	d.Service.RouteType = models.RouteFixed
	d.Service.Pickup.Location = route.Origin.Location
	d.Service.Pickup.Coordinates = route.Origin.Coordinates.Clone()
	d.Service.Dropoff.Location = route.Destination.Location
	d.Service.Dropoff.Coordinates = route.Destination.Coordinates.Clone()
	if route.Vehicle.ID != "" {
		v := route.Vehicle
		d.Vehicle = &v
	}
	if route.Driver != nil {
		drv := *route.Driver
		d.Driver = &drv
	}
	s.applyQuoteLocked(quote)

	type notification struct {
		fn    WatchFunc
		field string
	}
	var notify []notification
	var keys []string
	if before.Service.Pickup.Location != d.Service.Pickup.Location {
		keys = append(keys, FieldPickupLocation)
	}
	if !before.Service.Pickup.Coordinates.Equal(d.Service.Pickup.Coordinates) {
		keys = append(keys, FieldPickupCoordinates)
	}
	seen := map[int]bool{}
	for _, key := range keys {
		for id, w := range s.watchers {
			if w.fields[key] && !seen[id] {
				seen[id] = true
				notify = append(notify, notification{fn: w.fn, field: key})
			}
		}
	}
	s.mu.Unlock()

	for _, n := range notify {
		n.fn(n.field)
	}
}

// Availability returns a copy of the latest probe result, if any
func (s *Store) Availability() (models.AvailabilityResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.availability == nil {
		return models.AvailabilityResult{}, false
	}
	return s.availability.Clone(), true
}

// SetAvailability replaces the probe result
func (s *Store) SetAvailability(result models.AvailabilityResult) {
	a := result.Clone()
	s.mu.Lock()
	s.availability = &a
	s.mu.Unlock()
}

// AppendAvailableVehicle adds a vehicle to the current result, replacing an
// entry with the same id, and returns the updated result.
func (s *Store) AppendAvailableVehicle(v models.AvailableVehicle) models.AvailabilityResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.availability == nil {
		a := models.EmptyAvailability("")
		s.availability = &a
	}
	replaced := false
	for i := range s.availability.AvailableVehicles {
		if s.availability.AvailableVehicles[i].ID == v.ID {
			s.availability.AvailableVehicles[i] = v
			replaced = true
			break
		}
	}
	if !replaced {
		s.availability.AvailableVehicles = append(s.availability.AvailableVehicles, v)
	}
	s.availability.TotalVehiclesFound = len(s.availability.AvailableVehicles)
	return s.availability.Clone()
}

// ActiveStep returns the step currently shown
func (s *Store) ActiveStep() models.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeStep
}

// SetActiveStep moves the form to step
func (s *Store) SetActiveStep(step models.Step) {
	s.mu.Lock()
	s.activeStep = step
	s.mu.Unlock()
}

// Errors returns a copy of the current validation errors
func (s *Store) Errors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyErrors(s.errors)
}

// SetErrors replaces the validation errors
func (s *Store) SetErrors(errs map[string]string) {
	s.mu.Lock()
	s.errors = copyErrors(errs)
	s.mu.Unlock()
}

// IsOpen reports whether the form is currently open
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// SetOpen opens or closes the form
func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	s.open = open
	s.mu.Unlock()
}

// Reset restores the initial draft, clears availability and errors and goes
// back to the first step. Watchers are not notified.
func (s *Store) Reset() {
	s.mu.Lock()
	s.draft = models.NewBookingDraft(s.currency)
	s.availability = nil
	s.activeStep = models.StepClient
	s.errors = map[string]string{}
	s.mu.Unlock()
}

func copyErrors(errs map[string]string) map[string]string {
	out := make(map[string]string, len(errs))
	for k, v := range errs {
		out[k] = v
	}
	return out
}
