package submission

import (
	"fmt"
	"strings"
	"time"

	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
)

const pickupLayout = "2006-01-02 15:04"

// PickupDateTime combines the draft's date and time in loc
func PickupDateTime(d models.BookingDraft, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	value := strings.TrimSpace(d.Service.Pickup.Date) + " " + strings.TrimSpace(d.Service.Pickup.Time)
	t, err := time.ParseInLocation(pickupLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pickup date/time %q: %w", value, err)
	}
	return t, nil
}

// BuildPayload converts a validated draft into the reservation payload.
// Fields computed by the backend are sent as null.
func BuildPayload(d models.BookingDraft, loc *time.Location) (models.ReservationPayload, error) {
	pickupAt, err := PickupDateTime(d, loc)
	if err != nil {
		return models.ReservationPayload{}, err
	}

	requests := d.Details.SpecialRequests
	if requests == nil {
		requests = []string{}
	}

	p := models.ReservationPayload{
		Code:             nil,
		EstimatedArrival: nil,
		ClientID:         d.Client.ID,
		ClientName:       strings.TrimSpace(d.Client.Name),
		ClientPhone:      utils.NormalizePhone(d.Client.Phone),
		ClientEmail:      strings.TrimSpace(d.Client.Email),
		ServiceType:      d.Service.Type,
		RouteType:        d.Service.RouteType,
		Service:          models.ServiceEnvelope{Spec: serviceSpec(d)},
		PickupAddress:    d.Service.Pickup.Location,
		DropoffAddress:   d.Service.Dropoff.Location,
		PickupDateTime:   pickupAt,
		Passengers:       d.Details.Passengers,
		Luggage:          d.Details.Luggage,
		SpecialNotes:     d.Details.SpecialNotes,
		SpecialRequests:  requests,
		Amount:           d.Payment.Amount,
		Currency:         d.Payment.Currency,
		PaymentMethod:    d.Payment.Method,
		PaymentStatus:    d.Payment.Status,
		PriceBreakdown:   d.Payment.PriceBreakdown,
		RouteInfo:        d.Payment.RouteInfo,
	}
	if d.Vehicle != nil {
		p.VehicleID = d.Vehicle.ID
	}
	if d.Driver != nil {
		p.DriverID = d.Driver.ID
	}
	return p, nil
}

func serviceSpec(d models.BookingDraft) models.ServiceSpec {
	pickup := models.Stop{
		Address:     d.Service.Pickup.Location,
		Coordinates: d.Service.Pickup.Coordinates.Clone(),
	}
	dropoff := models.Stop{
		Address:     d.Service.Dropoff.Location,
		Coordinates: d.Service.Dropoff.Coordinates.Clone(),
	}

	switch d.Service.Type {
	case models.ServiceRoundTrip:
		return models.RoundTripService{Pickup: pickup, Dropoff: dropoff}
	case models.ServiceHourly:
		spec := models.HourlyService{Pickup: pickup, DurationMinutes: d.DurationMinutes()}
		if dropoff.Address != "" {
			spec.Dropoff = &dropoff
		}
		return spec
	case models.ServiceFullDay:
		return models.FullDayService{Pickup: pickup, Dropoff: dropoff, DurationMinutes: d.DurationMinutes()}
	default:
		return models.OneWayService{Pickup: pickup, Dropoff: dropoff}
	}
}
