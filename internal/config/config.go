package config

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"os"
	"time"
)

type Config struct {
	Environment string
	LogLevel    zerolog.Level
	HTTPTimeout time.Duration
	MaxRetries  int

	// Routing providers
	ORSAPIKey        string
	ORSBaseURL       string
	NominatimBaseURL string

	// Fuel price table location: local path, or S3 bucket/key when set.
	FuelPricesCSV      string
	FuelPricesS3Bucket string
	FuelPricesS3Key    string
}

type Option func(*Config)

// WithEnvironment allows setting the environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithLogLevel allows setting the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		parsedLevel, err := zerolog.ParseLevel(level)
		if err != nil {
			parsedLevel = zerolog.InfoLevel
		}
		c.LogLevel = parsedLevel
	}
}

// WithHTTPTimeout allows setting the HTTP timeout
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.HTTPTimeout = timeout
	}
}

// WithORSAPIKey allows setting the OpenRouteService API key
func WithORSAPIKey(key string) Option {
	return func(c *Config) {
		c.ORSAPIKey = key
	}
}

// New creates a new configuration with default values
func New(opts ...Option) *Config {
	cfg := &Config{
		Environment:      "production",
		LogLevel:         zerolog.InfoLevel,
		HTTPTimeout:      10 * time.Second,
		MaxRetries:       3,
		ORSBaseURL:       "https://api.openrouteservice.org",
		NominatimBaseURL: "https://nominatim.openstreetmap.org",
		FuelPricesCSV:    "fuel-prices.csv",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// InitializeLogging sets up logging based on the configuration
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(c.LogLevel)

	// Setup console logger for development environments
	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	cfg := New(
		WithEnvironment(getEnvOrDefault("ENV", "production")),
		WithLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		WithHTTPTimeout(getDurationEnvOrDefault("HTTP_TIMEOUT", 10*time.Second)),
		WithORSAPIKey(os.Getenv("ORS_API_KEY")),
	)
	cfg.ORSBaseURL = getEnvOrDefault("ORS_BASE_URL", cfg.ORSBaseURL)
	cfg.NominatimBaseURL = getEnvOrDefault("NOMINATIM_BASE_URL", cfg.NominatimBaseURL)
	cfg.FuelPricesCSV = getEnvOrDefault("FUEL_PRICES_CSV", cfg.FuelPricesCSV)
	cfg.FuelPricesS3Bucket = os.Getenv("FUEL_PRICES_S3_BUCKET")
	cfg.FuelPricesS3Key = getEnvOrDefault("FUEL_PRICES_S3_KEY", "fuel-prices.csv")
	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
