package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Stop is a named point in a reservation payload
type Stop struct {
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// ServiceSpec is the per-service-type part of a reservation. Each service
// type has its own variant; the JSON form carries a "type" discriminator.
type ServiceSpec interface {
	ServiceType() ServiceType
}

// OneWayService is a single transfer from pickup to dropoff
type OneWayService struct {
	Pickup  Stop `json:"pickup"`
	Dropoff Stop `json:"dropoff"`
}

// RoundTripService drives the route there and back
type RoundTripService struct {
	Pickup  Stop `json:"pickup"`
	Dropoff Stop `json:"dropoff"`
}

// HourlyService keeps the chauffeur for a number of minutes; dropoff is optional
type HourlyService struct {
	Pickup          Stop  `json:"pickup"`
	Dropoff         *Stop `json:"dropoff,omitempty"`
	DurationMinutes int   `json:"duration_minutes"`
}

// FullDayService is a day-long disposal ending at a dropoff
type FullDayService struct {
	Pickup          Stop `json:"pickup"`
	Dropoff         Stop `json:"dropoff"`
	DurationMinutes int  `json:"duration_minutes"`
}

func (OneWayService) ServiceType() ServiceType    { return ServiceOneWay }
func (RoundTripService) ServiceType() ServiceType { return ServiceRoundTrip }
func (HourlyService) ServiceType() ServiceType    { return ServiceHourly }
func (FullDayService) ServiceType() ServiceType   { return ServiceFullDay }

// ServiceEnvelope wraps a ServiceSpec for JSON encoding
type ServiceEnvelope struct {
	Spec ServiceSpec
}

// MarshalJSON flattens the variant and adds its "type" discriminator
func (e ServiceEnvelope) MarshalJSON() ([]byte, error) {
	if e.Spec == nil {
		return []byte("null"), nil
	}
	body, err := json.Marshal(e.Spec)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	typ, _ := json.Marshal(e.Spec.ServiceType())
	fields["type"] = typ
	return json.Marshal(fields)
}

// UnmarshalJSON decodes the variant selected by "type"
func (e *ServiceEnvelope) UnmarshalJSON(data []byte) error {
	var head struct {
		Type ServiceType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	var spec ServiceSpec
	switch head.Type {
	case ServiceOneWay:
		var s OneWayService
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		spec = s
	case ServiceRoundTrip:
		var s RoundTripService
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		spec = s
	case ServiceHourly:
		var s HourlyService
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		spec = s
	case ServiceFullDay:
		var s FullDayService
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		spec = s
	default:
		return fmt.Errorf("unknown service type %q", head.Type)
	}
	e.Spec = spec
	return nil
}

// ReservationPayload is the body posted to the reservation endpoint
type ReservationPayload struct {
	Code             *string         `json:"code"`
	EstimatedArrival *time.Time      `json:"estimated_arrival"`
	ClientID         string          `json:"client_id,omitempty"`
	ClientName       string          `json:"client_name"`
	ClientPhone      string          `json:"client_phone"`
	ClientEmail      string          `json:"client_email"`
	ServiceType      ServiceType     `json:"service_type"`
	RouteType        RouteType       `json:"route_type"`
	Service          ServiceEnvelope `json:"service"`
	PickupAddress    string          `json:"pickup_address"`
	DropoffAddress   string          `json:"dropoff_address,omitempty"`
	PickupDateTime   time.Time       `json:"pickup_datetime"`
	Passengers       int             `json:"passengers"`
	Luggage          string          `json:"luggage"`
	SpecialNotes     string          `json:"special_notes,omitempty"`
	SpecialRequests  []string        `json:"special_requests"`
	VehicleID        string          `json:"vehicle_id,omitempty"`
	DriverID         string          `json:"driver_id,omitempty"`
	Amount           float64         `json:"amount"`
	Currency         string          `json:"currency"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentStatus    string          `json:"payment_status"`
	PriceBreakdown   *PriceBreakdown `json:"price_breakdown,omitempty"`
	RouteInfo        *RouteInfo      `json:"route_info,omitempty"`
}

// Reservation is the backend's view of a created reservation
type Reservation struct {
	ID     json.Number `json:"id,omitempty"`
	Code   string      `json:"code"`
	Status string      `json:"status,omitempty"`
}

// ReservationResponse is the envelope returned on creation
type ReservationResponse struct {
	Reservation Reservation `json:"reservation"`
}

// ReservationCreatedEvent is published after a successful submission
type ReservationCreatedEvent struct {
	EventID         string      `json:"event_id"`
	SessionID       string      `json:"session_id"`
	ReservationCode string      `json:"reservation_code"`
	ServiceType     ServiceType `json:"service_type"`
	VehicleID       string      `json:"vehicle_id,omitempty"`
	Amount          float64     `json:"amount"`
	Currency        string      `json:"currency"`
	PickupDateTime  time.Time   `json:"pickup_datetime"`
	CreatedAt       time.Time   `json:"created_at"`
}

// SubmissionFailedEvent is published when the backend rejects a reservation
type SubmissionFailedEvent struct {
	EventID   string      `json:"event_id"`
	SessionID string      `json:"session_id"`
	Service   ServiceType `json:"service_type"`
	Message   string      `json:"message"`
	FailedAt  time.Time   `json:"failed_at"`
}

// AvailabilityProbedEvent is published after each applied probe
type AvailabilityProbedEvent struct {
	EventID       string    `json:"event_id"`
	SessionID     string    `json:"session_id"`
	PickupAddress string    `json:"pickup_address"`
	VehiclesFound int       `json:"vehicles_found"`
	Message       string    `json:"message,omitempty"`
	ProbedAt      time.Time `json:"probed_at"`
}

// Submission statuses stored in the submission log
const (
	SubmissionSucceeded = "succeeded"
	SubmissionFailed    = "failed"
)

// SubmissionRecord is one row of the submission log
type SubmissionRecord struct {
	ID              string    `db:"id"`
	SessionID       string    `db:"session_id"`
	ReservationCode *string   `db:"reservation_code"`
	Status          string    `db:"status"`
	Payload         []byte    `db:"payload"`
	ErrorMessage    *string   `db:"error_message"`
	CreatedAt       time.Time `db:"created_at"`
}
