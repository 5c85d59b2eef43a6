package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// Coordinates is a WGS-84 point. A nil *Coordinates means "unknown".
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point is a finite lat/lng pair within range
func (c *Coordinates) Valid() bool {
	if c == nil {
		return false
	}
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Equal compares two optional points
func (c *Coordinates) Equal(other *Coordinates) bool {
	if c == nil || other == nil {
		return c == nil && other == nil
	}
	return c.Lat == other.Lat && c.Lng == other.Lng
}

// Clone returns a copy of the point
func (c *Coordinates) Clone() *Coordinates {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// UnmarshalJSON accepts {"lat":..,"lng":..} as well as a [lat, lng] tuple
func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("coordinates must have exactly 2 elements, got %d", len(pair))
		}
		c.Lat, c.Lng = pair[0], pair[1]
		return nil
	}

	type plain Coordinates
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("invalid coordinates: %w", err)
	}
	*c = Coordinates(p)
	return nil
}

// ClientInfo identifies the person booking the ride
type ClientInfo struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Pickup holds the pickup point and schedule
type Pickup struct {
	Date        string       `json:"date"` // YYYY-MM-DD
	Time        string       `json:"time"` // HH:MM
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Dropoff holds the dropoff point
type Dropoff struct {
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// ServiceInfo describes what kind of ride is being booked
type ServiceInfo struct {
	Type      ServiceType `json:"type"`
	RouteType RouteType   `json:"routeType"`
	Pickup    Pickup      `json:"pickup"`
	Dropoff   Dropoff     `json:"dropoff"`
	Duration  *int        `json:"duration,omitempty"` // minutes
}

// TripDetails holds passenger-facing details
type TripDetails struct {
	Passengers      int      `json:"passengers"`
	Luggage         string   `json:"luggage"`
	SpecialNotes    string   `json:"specialNotes"`
	SpecialRequests []string `json:"specialRequests"`
}

// Ref is an {id, name} pair used for vehicle and driver selections
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaymentInfo holds amount and the computed price
type PaymentInfo struct {
	Amount         float64         `json:"amount"`
	Currency       string          `json:"currency"`
	Method         string          `json:"method"`
	Status         string          `json:"status"`
	PriceBreakdown *PriceBreakdown `json:"priceBreakdown,omitempty"`
	RouteInfo      *RouteInfo      `json:"routeInfo,omitempty"`
}

// BookingDraft is the canonical state of a booking being filled in
type BookingDraft struct {
	Client  ClientInfo  `json:"client"`
	Service ServiceInfo `json:"service"`
	Details TripDetails `json:"details"`
	Vehicle *Ref        `json:"vehicle,omitempty"`
	Driver  *Ref        `json:"driver,omitempty"`
	Payment PaymentInfo `json:"payment"`
}

// Payment status and method defaults
const (
	PaymentStatusPending = "pending"
	PaymentMethodCash    = "cash"
)

// NewBookingDraft returns the initial empty draft
func NewBookingDraft(currency string) BookingDraft {
	return BookingDraft{
		Service: ServiceInfo{
			Type:      ServiceOneWay,
			RouteType: RouteFlexible,
		},
		Details: TripDetails{
			Passengers:      1,
			SpecialRequests: []string{},
		},
		Payment: PaymentInfo{
			Currency: currency,
			Method:   PaymentMethodCash,
			Status:   PaymentStatusPending,
		},
	}
}

// Clone returns a deep copy of the draft
func (d BookingDraft) Clone() BookingDraft {
	cp := d
	cp.Service.Pickup.Coordinates = d.Service.Pickup.Coordinates.Clone()
	cp.Service.Dropoff.Coordinates = d.Service.Dropoff.Coordinates.Clone()
	if d.Service.Duration != nil {
		v := *d.Service.Duration
		cp.Service.Duration = &v
	}
	if d.Details.SpecialRequests != nil {
		cp.Details.SpecialRequests = append([]string{}, d.Details.SpecialRequests...)
	}
	if d.Vehicle != nil {
		v := *d.Vehicle
		cp.Vehicle = &v
	}
	if d.Driver != nil {
		v := *d.Driver
		cp.Driver = &v
	}
	if d.Payment.PriceBreakdown != nil {
		v := *d.Payment.PriceBreakdown
		cp.Payment.PriceBreakdown = &v
	}
	if d.Payment.RouteInfo != nil {
		v := *d.Payment.RouteInfo
		cp.Payment.RouteInfo = &v
	}
	return cp
}

// PriceKey is the tuple a price breakdown is valid for
type PriceKey struct {
	VehicleID   string
	Pickup      *Coordinates
	Dropoff     *Coordinates
	ServiceType ServiceType

	// DurationMinutes is set only for time-based services
	DurationMinutes int
}

// Equal compares two price keys
func (k PriceKey) Equal(other PriceKey) bool {
	return k.VehicleID == other.VehicleID &&
		k.ServiceType == other.ServiceType &&
		k.DurationMinutes == other.DurationMinutes &&
		k.Pickup.Equal(other.Pickup) &&
		k.Dropoff.Equal(other.Dropoff)
}

// PriceKey returns the tuple the current price must match
func (d BookingDraft) PriceKey() PriceKey {
	key := PriceKey{
		Pickup:      d.Service.Pickup.Coordinates.Clone(),
		Dropoff:     d.Service.Dropoff.Coordinates.Clone(),
		ServiceType: d.Service.Type,
	}
	if d.Vehicle != nil {
		key.VehicleID = d.Vehicle.ID
	}
	if d.Service.Type.IsTimeBased() {
		key.DurationMinutes = d.DurationMinutes()
	}
	return key
}

// DurationMinutes returns the requested duration or zero when unset
func (d BookingDraft) DurationMinutes() int {
	if d.Service.Duration == nil {
		return 0
	}
	return *d.Service.Duration
}
