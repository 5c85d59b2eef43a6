package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the env file (local only) and the
// process environment.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "booking-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_TYPE", "file")

	v.SetDefault("BACKEND_BASE_URL", "http://localhost:8000/api")
	v.SetDefault("BACKEND_TIMEOUT", "15s")

	v.SetDefault("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place")
	v.SetDefault("PLACES_COUNTRIES", "es")
	v.SetDefault("PLACES_TIMEOUT", "5s")

	v.SetDefault("ROUTING_PROVIDER", "osrm")
	v.SetDefault("ROUTING_BASE_URL", "https://router.project-osrm.org")
	v.SetDefault("ROUTING_TIMEOUT", "10s")
	v.SetDefault("ROUTING_CACHE_TTL", "6h")

	v.SetDefault("BOOKING_SETTLING_DELAY", "500ms")
	v.SetDefault("BOOKING_RETRIGGER_AFTER_PROBE", false)
	v.SetDefault("BOOKING_DEFAULT_DURATION_MINUTES", 60)
	v.SetDefault("BOOKING_MIN_DURATION_MINUTES", 60)
	v.SetDefault("BOOKING_TIME_ZONE", "Europe/Madrid")
	v.SetDefault("BOOKING_CURRENCY", "EUR")
	v.SetDefault("BOOKING_SESSION_TTL", "2h")

	v.SetDefault("PRICING_TAX_PERCENTAGE", 10.0)
	v.SetDefault("PRICING_STANDARD_BASE_FARE", 50.0)
	v.SetDefault("PRICING_STANDARD_PER_KM", 2.0)
	v.SetDefault("PRICING_STANDARD_PER_HOUR", 45.0)

	return v
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	// Booking backend
	configs.Backend.BaseURL = strings.TrimRight(v.GetString("BACKEND_BASE_URL"), "/")
	configs.Backend.APIKey = v.GetString("BACKEND_API_KEY")
	configs.Backend.Timeout = v.GetDuration("BACKEND_TIMEOUT")

	// Places provider
	configs.Places.BaseURL = strings.TrimRight(v.GetString("PLACES_BASE_URL"), "/")
	configs.Places.APIKey = v.GetString("PLACES_API_KEY")
	configs.Places.Countries = SplitList(v.GetString("PLACES_COUNTRIES"))
	configs.Places.Timeout = v.GetDuration("PLACES_TIMEOUT")

	// Routing provider
	configs.Routing.Provider = v.GetString("ROUTING_PROVIDER")
	configs.Routing.BaseURL = strings.TrimRight(v.GetString("ROUTING_BASE_URL"), "/")
	configs.Routing.Timeout = v.GetDuration("ROUTING_TIMEOUT")
	configs.Routing.CacheTTL = v.GetDuration("ROUTING_CACHE_TTL")

	// Booking sessions
	configs.Booking.SettlingDelay = v.GetDuration("BOOKING_SETTLING_DELAY")
	configs.Booking.RetriggerAfterProbe = v.GetBool("BOOKING_RETRIGGER_AFTER_PROBE")
	configs.Booking.DefaultDurationMinutes = v.GetInt("BOOKING_DEFAULT_DURATION_MINUTES")
	configs.Booking.MinDurationMinutes = v.GetInt("BOOKING_MIN_DURATION_MINUTES")
	configs.Booking.TimeZone = v.GetString("BOOKING_TIME_ZONE")
	configs.Booking.Currency = v.GetString("BOOKING_CURRENCY")
	configs.Booking.SessionTTL = v.GetDuration("BOOKING_SESSION_TTL")

	// Pricing
	configs.Pricing.TaxPercentage = v.GetFloat64("PRICING_TAX_PERCENTAGE")
	configs.Pricing.StandardTariff = models.Tariff{
		BaseFare: v.GetFloat64("PRICING_STANDARD_BASE_FARE"),
		PerKm:    v.GetFloat64("PRICING_STANDARD_PER_KM"),
		PerHour:  v.GetFloat64("PRICING_STANDARD_PER_HOUR"),
		Currency: configs.Booking.Currency,
	}

	return configs
}

// GetEnv returns the environment variable or the default when unset
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// SplitList splits a comma separated value, dropping blanks
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
