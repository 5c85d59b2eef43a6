package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
	"github.com/piresc/chauffeur/services/booking/availability"
	"github.com/piresc/chauffeur/services/booking/pricing"
	"github.com/piresc/chauffeur/services/booking/submission"
	"github.com/piresc/chauffeur/services/booking/validation"
)

// BookingUC implements the booking use case interface
type BookingUC struct {
	cfg        *models.Config
	draftRepo  booking.DraftRepo
	backendGW  booking.BackendGW
	placesGW   booking.PlacesGW
	eventGW    booking.EventGW
	notifier   booking.SessionNotifier
	prober     *availability.Prober
	calculator *pricing.Calculator
	validator  *validation.StepValidator
	submitter  *submission.Coordinator

	mu       sync.Mutex
	sessions map[string]*session

	now   func() time.Time
	newID func() string
}

// NewBookingUC creates a new booking use case. eventGW, submissionRepo and
// notifier may be nil.
func NewBookingUC(
	cfg *models.Config,
	draftRepo booking.DraftRepo,
	submissionRepo booking.SubmissionRepo,
	backendGW booking.BackendGW,
	placesGW booking.PlacesGW,
	routeGW booking.RouteGW,
	eventGW booking.EventGW,
	notifier booking.SessionNotifier,
) (*BookingUC, error) {
	loc := time.UTC
	if cfg.Booking.TimeZone != "" {
		l, err := time.LoadLocation(cfg.Booking.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("invalid booking time zone %q: %w", cfg.Booking.TimeZone, err)
		}
		loc = l
	}

	validator := validation.NewStepValidator(cfg.Booking.MinDurationMinutes)

	return &BookingUC{
		cfg:       cfg,
		draftRepo: draftRepo,
		backendGW: backendGW,
		placesGW:  placesGW,
		eventGW:   eventGW,
		notifier:  notifier,
		prober: availability.NewProber(backendGW, availability.Config{
			DefaultDurationMinutes: cfg.Booking.DefaultDurationMinutes,
			MinDurationMinutes:     cfg.Booking.MinDurationMinutes,
		}),
		calculator: pricing.NewCalculator(routeGW, pricing.Config{
			TaxPercentage:  cfg.Pricing.TaxPercentage,
			StandardTariff: cfg.Pricing.StandardTariff,
			Currency:       cfg.Booking.Currency,
		}),
		validator: validator,
		submitter: submission.NewCoordinator(backendGW, eventGW, submissionRepo, validator, loc),
		sessions:  map[string]*session{},
		now:       time.Now,
		newID:     uuid.NewString,
	}, nil
}
