package models

import (
	"encoding/json"
	"time"
)

// PlaceResult is one autocomplete suggestion
type PlaceResult struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
}

// ResolvedLocation is a place resolved to a description and, when the
// provider returned geometry, coordinates.
type ResolvedLocation struct {
	Description string       `json:"description"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// StopTarget selects which end of the trip an address is written to
type StopTarget string

const (
	TargetPickup  StopTarget = "pickup"
	TargetDropoff StopTarget = "dropoff"
)

// FieldEdit is one setField call coming from the form
type FieldEdit struct {
	Section string      `json:"section"`
	Field   string      `json:"field"`
	Value   interface{} `json:"value"`
}

// SessionState is the serialisable state of one booking session
type SessionState struct {
	ID                  string              `json:"id"`
	Draft               BookingDraft        `json:"draft"`
	ActiveStep          Step                `json:"active_step"`
	Errors              map[string]string   `json:"errors"`
	Availability        *AvailabilityResult `json:"availability,omitempty"`
	Open                bool                `json:"open"`
	LastReservationCode string              `json:"last_reservation_code,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// StepResult reports the outcome of a navigation attempt
type StepResult struct {
	Advanced   bool              `json:"advanced"`
	ActiveStep Step              `json:"active_step"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// SubmissionResult reports the outcome of a submit
type SubmissionResult struct {
	ReservationCode string `json:"reservation_code"`
	Message         string `json:"message"`
}

// WSMessage is the envelope pushed to live subscribers of a session
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage is the payload of an "error" event
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
