package form

import (
	"errors"
	"math"
	"strings"

	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/spf13/cast"
)

// Field keys, "section.field"
const (
	FieldPickupLocation     = "pickup.location"
	FieldPickupCoordinates  = "pickup.coordinates"
	FieldPickupDate         = "pickup.date"
	FieldPickupTime         = "pickup.time"
	FieldDropoffLocation    = "dropoff.location"
	FieldDropoffCoordinates = "dropoff.coordinates"
	FieldServiceType        = "service.type"
	FieldServiceDuration    = "service.duration"
	FieldVehicleID          = "vehicle.id"
)

// ProbeFields are the fields whose change schedules an availability probe
var ProbeFields = []string{
	FieldPickupLocation,
	FieldPickupCoordinates,
	FieldPickupDate,
	FieldPickupTime,
	FieldServiceDuration,
	FieldServiceType,
}

// priceFields invalidate the current price when they change
var priceFields = map[string]bool{
	FieldPickupLocation:     true,
	FieldPickupCoordinates:  true,
	FieldDropoffLocation:    true,
	FieldDropoffCoordinates: true,
	FieldServiceType:        true,
	FieldVehicleID:          true,
}

// ErrInvalidValue is returned when a value cannot be coerced to the field's type
var ErrInvalidValue = errors.New("invalid field value")

// setter coerces value and writes it into the draft. It reports whether the
// stored value changed and must leave the draft untouched on error.
type setter func(d *models.BookingDraft, value interface{}) (bool, error)

var setters = map[string]setter{
	"client.id":    stringField(func(d *models.BookingDraft) *string { return &d.Client.ID }),
	"client.name":  stringField(func(d *models.BookingDraft) *string { return &d.Client.Name }),
	"client.phone": stringField(func(d *models.BookingDraft) *string { return &d.Client.Phone }),
	"client.email": stringField(func(d *models.BookingDraft) *string { return &d.Client.Email }),

	FieldServiceType:    setServiceType,
	"service.routeType": setRouteType,
	FieldServiceDuration: setDuration,

	FieldPickupDate:        trimmedField(func(d *models.BookingDraft) *string { return &d.Service.Pickup.Date }),
	FieldPickupTime:        trimmedField(func(d *models.BookingDraft) *string { return &d.Service.Pickup.Time }),
	FieldPickupLocation:    stringField(func(d *models.BookingDraft) *string { return &d.Service.Pickup.Location }),
	FieldPickupCoordinates: coordinatesField(func(d *models.BookingDraft) **models.Coordinates { return &d.Service.Pickup.Coordinates }),

	FieldDropoffLocation:    stringField(func(d *models.BookingDraft) *string { return &d.Service.Dropoff.Location }),
	FieldDropoffCoordinates: coordinatesField(func(d *models.BookingDraft) **models.Coordinates { return &d.Service.Dropoff.Coordinates }),

	"details.passengers":      setPassengers,
	"details.luggage":         stringField(func(d *models.BookingDraft) *string { return &d.Details.Luggage }),
	"details.specialNotes":    stringField(func(d *models.BookingDraft) *string { return &d.Details.SpecialNotes }),
	"details.specialRequests": setSpecialRequests,

	FieldVehicleID: refID(func(d *models.BookingDraft) **models.Ref { return &d.Vehicle }),
	"vehicle.name": refName(func(d *models.BookingDraft) **models.Ref { return &d.Vehicle }),
	"driver.id":    refID(func(d *models.BookingDraft) **models.Ref { return &d.Driver }),
	"driver.name":  refName(func(d *models.BookingDraft) **models.Ref { return &d.Driver }),

	"payment.amount":   setAmount,
	"payment.currency": trimmedField(func(d *models.BookingDraft) *string { return &d.Payment.Currency }),
	"payment.method":   trimmedField(func(d *models.BookingDraft) *string { return &d.Payment.Method }),
	"payment.status":   trimmedField(func(d *models.BookingDraft) *string { return &d.Payment.Status }),
}

func stringField(target func(d *models.BookingDraft) *string) setter {
	return func(d *models.BookingDraft, value interface{}) (bool, error) {
		v, err := cast.ToStringE(value)
		if err != nil {
			return false, ErrInvalidValue
		}
		p := target(d)
		if *p == v {
			return false, nil
		}
		*p = v
		return true, nil
	}
}

func trimmedField(target func(d *models.BookingDraft) *string) setter {
	inner := stringField(target)
	return func(d *models.BookingDraft, value interface{}) (bool, error) {
		v, err := cast.ToStringE(value)
		if err != nil {
			return false, ErrInvalidValue
		}
		return inner(d, strings.TrimSpace(v))
	}
}

func setServiceType(d *models.BookingDraft, value interface{}) (bool, error) {
	v, err := cast.ToStringE(value)
	if err != nil {
		return false, ErrInvalidValue
	}
	t := models.ServiceType(strings.TrimSpace(v))
	if !t.Valid() {
		return false, ErrInvalidValue
	}
	if d.Service.Type == t {
		return false, nil
	}
	d.Service.Type = t
	return true, nil
}

func setRouteType(d *models.BookingDraft, value interface{}) (bool, error) {
	v, err := cast.ToStringE(value)
	if err != nil {
		return false, ErrInvalidValue
	}
	t := models.RouteType(strings.TrimSpace(v))
	if t != models.RouteFlexible && t != models.RouteFixed {
		return false, ErrInvalidValue
	}
	if d.Service.RouteType == t {
		return false, nil
	}
	d.Service.RouteType = t
	return true, nil
}

func setDuration(d *models.BookingDraft, value interface{}) (bool, error) {
	if value == nil || value == "" {
		if d.Service.Duration == nil {
			return false, nil
		}
		d.Service.Duration = nil
		return true, nil
	}
	minutes, err := cast.ToIntE(value)
	if err != nil || minutes < 0 {
		return false, ErrInvalidValue
	}
	if d.Service.Duration != nil && *d.Service.Duration == minutes {
		return false, nil
	}
	d.Service.Duration = &minutes
	return true, nil
}

func setPassengers(d *models.BookingDraft, value interface{}) (bool, error) {
	n, err := cast.ToIntE(value)
	if err != nil || n < 0 {
		return false, ErrInvalidValue
	}
	if d.Details.Passengers == n {
		return false, nil
	}
	d.Details.Passengers = n
	return true, nil
}

func setSpecialRequests(d *models.BookingDraft, value interface{}) (bool, error) {
	requests := []string{}
	if value != nil {
		v, err := cast.ToStringSliceE(value)
		if err != nil {
			return false, ErrInvalidValue
		}
		requests = append(requests, v...)
	}
	if equalStrings(d.Details.SpecialRequests, requests) {
		return false, nil
	}
	d.Details.SpecialRequests = requests
	return true, nil
}

func setAmount(d *models.BookingDraft, value interface{}) (bool, error) {
	amount, err := cast.ToFloat64E(value)
	if err != nil || amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false, ErrInvalidValue
	}
	if d.Payment.Amount == amount {
		return false, nil
	}
	d.Payment.Amount = amount
	return true, nil
}

func refID(target func(d *models.BookingDraft) **models.Ref) setter {
	return func(d *models.BookingDraft, value interface{}) (bool, error) {
		id, err := cast.ToStringE(value)
		if err != nil {
			return false, ErrInvalidValue
		}
		id = strings.TrimSpace(id)
		ref := target(d)
		switch {
		case id == "" && *ref == nil:
			return false, nil
		case id == "":
			*ref = nil
			return true, nil
		case *ref != nil && (*ref).ID == id:
			return false, nil
		case *ref == nil:
			*ref = &models.Ref{ID: id}
		default:
			// a different selection; the old name no longer applies
			*ref = &models.Ref{ID: id}
		}
		return true, nil
	}
}

func refName(target func(d *models.BookingDraft) **models.Ref) setter {
	return func(d *models.BookingDraft, value interface{}) (bool, error) {
		name, err := cast.ToStringE(value)
		if err != nil {
			return false, ErrInvalidValue
		}
		ref := target(d)
		if *ref == nil {
			if name == "" {
				return false, nil
			}
			*ref = &models.Ref{Name: name}
			return true, nil
		}
		if (*ref).Name == name {
			return false, nil
		}
		updated := **ref
		updated.Name = name
		*ref = &updated
		return true, nil
	}
}

func coordinatesField(target func(d *models.BookingDraft) **models.Coordinates) setter {
	return func(d *models.BookingDraft, value interface{}) (bool, error) {
		c, err := ToCoordinates(value)
		if err != nil {
			return false, err
		}
		p := target(d)
		if (*p).Equal(c) {
			return false, nil
		}
		*p = c
		return true, nil
	}
}

// ToCoordinates coerces a decoded JSON value into coordinates. nil clears
// them; objects with lat/lng and [lat, lng] pairs are accepted.
func ToCoordinates(value interface{}) (*models.Coordinates, error) {
	var c models.Coordinates
	switch v := value.(type) {
	case nil:
		return nil, nil
	case models.Coordinates:
		c = v
	case *models.Coordinates:
		if v == nil {
			return nil, nil
		}
		c = *v
	case []float64:
		if len(v) != 2 {
			return nil, ErrInvalidValue
		}
		c = models.Coordinates{Lat: v[0], Lng: v[1]}
	case []interface{}:
		if len(v) != 2 {
			return nil, ErrInvalidValue
		}
		lat, err1 := toFloat(v[0])
		lng, err2 := toFloat(v[1])
		if err1 != nil || err2 != nil {
			return nil, ErrInvalidValue
		}
		c = models.Coordinates{Lat: lat, Lng: lng}
	case map[string]interface{}:
		lat, err1 := toFloat(v["lat"])
		lng, err2 := toFloat(v["lng"])
		if err1 != nil || err2 != nil {
			return nil, ErrInvalidValue
		}
		c = models.Coordinates{Lat: lat, Lng: lng}
	default:
		return nil, ErrInvalidValue
	}
	if !c.Valid() {
		return nil, ErrInvalidValue
	}
	return &c, nil
}

// toFloat only accepts numbers; numeric strings are not coordinates
func toFloat(v interface{}) (float64, error) {
	switch v.(type) {
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return cast.ToFloat64E(v)
	}
	return 0, ErrInvalidValue
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
