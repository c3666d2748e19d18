package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// CacheConfig holds all cache-related configuration
type CacheConfig struct {
	// Plan LRU cache settings
	PlanLRUSize       int
	PlanLRUTTLMinutes int

	// DynamoDB geocode cache settings
	GeocodeDynamoTTLDays int

	// General settings
	EnablePlanCache    bool
	EnableGeocodeCache bool
}

const (
	// Default values
	defaultPlanLRUSize          = 1000
	defaultPlanTTLMinutes       = 60
	defaultGeocodeDynamoTTLDays = 30
)

// GetCacheConfig returns the cache configuration from environment variables or defaults
func GetCacheConfig() *CacheConfig {
	config := &CacheConfig{
		PlanLRUSize:          getEnvInt("CACHE_PLAN_LRU_SIZE", defaultPlanLRUSize),
		PlanLRUTTLMinutes:    getEnvInt("CACHE_PLAN_LRU_TTL_MINUTES", defaultPlanTTLMinutes),
		GeocodeDynamoTTLDays: getEnvInt("CACHE_GEOCODE_DYNAMO_TTL_DAYS", defaultGeocodeDynamoTTLDays),
		EnablePlanCache:      getEnvBool("CACHE_ENABLE_PLAN", true),
		EnableGeocodeCache:   getEnvBool("CACHE_ENABLE_GEOCODE", false),
	}

	log.Debug().
		Int("PlanLRUSize", config.PlanLRUSize).
		Int("PlanLRUTTLMinutes", config.PlanLRUTTLMinutes).
		Int("GeocodeDynamoTTLDays", config.GeocodeDynamoTTLDays).
		Bool("EnablePlanCache", config.EnablePlanCache).
		Bool("EnableGeocodeCache", config.EnableGeocodeCache).
		Msg("Cache configuration loaded")

	return config
}

// Helper methods for the CacheConfig struct
func (c *CacheConfig) GetPlanLRUTTL() time.Duration {
	return time.Duration(c.PlanLRUTTLMinutes) * time.Minute
}

func (c *CacheConfig) GetGeocodeDynamoTTL() time.Duration {
	return time.Duration(c.GeocodeDynamoTTLDays) * 24 * time.Hour
}

// Helper functions to get environment variables with defaults
func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Msg("Invalid integer value in environment variable, using default")
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val, exists := os.LookupEnv(key); exists {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
