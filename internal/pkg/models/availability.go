package models

import "encoding/json"

// Tariff is a vehicle's pricing structure
type Tariff struct {
	BaseFare float64 `json:"base_fare"`
	PerKm    float64 `json:"per_km"`
	PerHour  float64 `json:"per_hour"`
	Currency string  `json:"currency,omitempty"`
}

// AvailableVehicle is one vehicle returned by an availability probe
type AvailableVehicle struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	Capacity        int     `json:"capacity,omitempty"`
	LuggageCapacity int     `json:"luggage_capacity,omitempty"`
	Zone            string  `json:"zone,omitempty"`
	Tariff          *Tariff `json:"tariff,omitempty"`
	Driver          *Ref    `json:"driver,omitempty"`
	ExtendedHours   bool    `json:"extended_hours,omitempty"`
}

// AvailabilityResult is the canonical outcome of a probe
type AvailabilityResult struct {
	TotalVehiclesFound               int                `json:"total_vehicles_found"`
	FixedZoneCount                   int                `json:"fixed_zone_count"`
	FlexibleRouteCount               int                `json:"flexible_route_count"`
	AvailableVehicles                []AvailableVehicle `json:"available_vehicles"`
	VehiclesWithAlternativeSchedules []json.RawMessage  `json:"vehicles_with_alternative_schedules,omitempty"`
	Message                          string             `json:"message,omitempty"`
}

// EmptyAvailability returns a zero-vehicle result carrying a message
func EmptyAvailability(message string) AvailabilityResult {
	return AvailabilityResult{
		AvailableVehicles: []AvailableVehicle{},
		Message:           message,
	}
}

// Clone returns a deep copy of the result
func (r AvailabilityResult) Clone() AvailabilityResult {
	cp := r
	cp.AvailableVehicles = make([]AvailableVehicle, len(r.AvailableVehicles))
	copy(cp.AvailableVehicles, r.AvailableVehicles)
	if r.VehiclesWithAlternativeSchedules != nil {
		cp.VehiclesWithAlternativeSchedules = make([]json.RawMessage, len(r.VehiclesWithAlternativeSchedules))
		copy(cp.VehiclesWithAlternativeSchedules, r.VehiclesWithAlternativeSchedules)
	}
	return cp
}

// FindTariff looks up a vehicle's tariff in the available vehicles and,
// failing that, in the alternative-schedule entries.
func (r AvailabilityResult) FindTariff(vehicleID string) (*Tariff, bool) {
	for _, v := range r.AvailableVehicles {
		if v.ID == vehicleID && v.Tariff != nil {
			t := *v.Tariff
			return &t, true
		}
	}
	for _, raw := range r.VehiclesWithAlternativeSchedules {
		var alt AvailableVehicle
		if err := json.Unmarshal(raw, &alt); err != nil {
			continue
		}
		if alt.ID == vehicleID && alt.Tariff != nil {
			return alt.Tariff, true
		}
	}
	return nil, false
}

// VehicleSearchRequest is the body of the availability probe endpoint
type VehicleSearchRequest struct {
	PickupAddress     string `json:"pickup_address"`
	PickupDate        string `json:"pickup_date"`
	PickupTime        string `json:"pickup_time"`
	EstimatedDuration int    `json:"estimated_duration"`
}

// VehicleSearchSummary holds the backend's counters
type VehicleSearchSummary struct {
	TotalVehiclesFound    int `json:"total_vehicles_found"`
	ZonesFound            int `json:"zones_found"`
	FlexibleVehiclesFound int `json:"flexible_vehicles_found"`
}

// VehicleSearchResponse is the backend's raw availability response
type VehicleSearchResponse struct {
	SearchResults                    VehicleSearchSummary `json:"search_results"`
	Vehicles                         []AvailableVehicle   `json:"vehicles"`
	VehiclesWithAlternativeSchedules []json.RawMessage    `json:"vehicles_with_alternative_schedules,omitempty"`
}
