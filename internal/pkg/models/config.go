package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Backend  BackendConfig
	Places   PlacesConfig
	Routing  RoutingConfig
	Booking  BookingConfig
	Pricing  PricingConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}

// BackendConfig points at the booking backend (admin API)
type BackendConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// PlacesConfig contains the place search / geocoding provider settings
type PlacesConfig struct {
	BaseURL   string
	APIKey    string
	Countries []string
	Timeout   time.Duration
}

// RoutingConfig contains the route distance provider settings
type RoutingConfig struct {
	Provider string // "osrm" or "haversine"
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// BookingConfig contains booking session behaviour
type BookingConfig struct {
	SettlingDelay          time.Duration
	RetriggerAfterProbe    bool
	DefaultDurationMinutes int
	MinDurationMinutes     int
	TimeZone               string
	Currency               string
	SessionTTL             time.Duration
}

// PricingConfig contains tax and fallback tariff settings
type PricingConfig struct {
	TaxPercentage  float64 `json:"tax_percentage"`
	StandardTariff Tariff  `json:"standard_tariff"`
}
