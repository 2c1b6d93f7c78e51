package config

import (
	"os"
	"strconv"
	"time"
)

// Runtime configuration, read from the environment (a .env file is loaded
// by the binaries before this runs).
type Config struct {
	Env  string
	Port string

	DatabaseURL string
	SeedPath    string
	SeedOnStart bool

	RedisAddr     string
	RedisPassword string
	CatalogTTL    time.Duration
	TrackingTTL   time.Duration

	// PricingStrict fails shipment creation loudly on a pricing error
	// instead of substituting the default quote.
	PricingStrict bool
}

func Load() Config {
	return Config{
		Env:           Get("APP_ENV", "development"),
		Port:          Get("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SeedPath:      Get("SEED_PATH", "data/seeds/catalog.json"),
		SeedOnStart:   GetBool("SEED_ON_START", true),
		RedisAddr:     Get("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CatalogTTL:    GetDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		TrackingTTL:   GetDuration("TRACKING_CACHE_TTL", time.Minute),
		PricingStrict: GetBool("PRICING_STRICT", false),
	}
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
