package models

// Route is the raw distance/duration returned by a routing provider
type Route struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Provider        string  `json:"provider"`
}

// RouteInfo is the route summary stored next to a price breakdown
type RouteInfo struct {
	OneWayDistanceKm float64 `json:"one_way_distance_km"`
	TotalDistanceKm  float64 `json:"total_distance_km"`
	DurationMinutes  float64 `json:"duration_minutes"`
	IsRoundTrip      bool    `json:"is_round_trip"`
	Provider         string  `json:"provider,omitempty"`
}

// PriceBreakdown is the tax-inclusive price of a booking
type PriceBreakdown struct {
	BaseFare         float64  `json:"base_fare"`
	DistanceCharge   float64  `json:"distance_charge"`
	Subtotal         float64  `json:"subtotal"`
	TaxPercentage    float64  `json:"tax_percentage"`
	TaxAmount        float64  `json:"tax_amount"`
	Total            float64  `json:"total"`
	TotalDistanceKm  float64  `json:"total_distance_km"`
	IsRoundTrip      bool     `json:"is_round_trip"`
	OneWayDistanceKm *float64 `json:"one_way_distance_km,omitempty"`
	Currency         string   `json:"currency,omitempty"`
}

// PriceQuote pairs a breakdown with the route it was computed from
type PriceQuote struct {
	RouteInfo      RouteInfo      `json:"route_info"`
	PriceBreakdown PriceBreakdown `json:"price_breakdown"`
}

// FixedRouteStop is one end of a fixed route
type FixedRouteStop struct {
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// FixedRoute is a pre-defined origin/destination pairing with preset pricing
type FixedRoute struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Origin      FixedRouteStop `json:"origin"`
	Destination FixedRouteStop `json:"destination"`
	DistanceKm  float64        `json:"distance_km"`
	Price       float64        `json:"price"`
	Currency    string         `json:"currency,omitempty"`
	Vehicle     Ref            `json:"vehicle"`
	Driver      *Ref           `json:"driver,omitempty"`
}

// FixedRouteSearchResponse is the backend's fixed-route search envelope
type FixedRouteSearchResponse struct {
	Status  string       `json:"status"`
	Routes  []FixedRoute `json:"routes,omitempty"`
	Message string       `json:"message,omitempty"`
}
