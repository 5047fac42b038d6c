package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ListingCacheTTL time.Duration
	RateLimit       string // ulule/limiter format, e.g. "100-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("POSTGRES_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LISTING_CACHE_TTL", "5m")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("POSTGRES_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: POSTGRES_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	ttlStr := viper.GetString("LISTING_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 5 * time.Minute
		log.Printf("Warning: Invalid value for LISTING_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.ListingCacheTTL = ttl

	return cfg, nil
}

// DatabaseURLWithSSL returns the database URL with encrypted transport
// enforced: when the URL carries no sslmode parameter, sslmode=require is
// appended. An explicit sslmode is left alone so local development can opt
// out deliberately.
func (c *Config) DatabaseURLWithSSL() string {
	if c.DatabaseURL == "" || strings.Contains(c.DatabaseURL, "sslmode=") {
		return c.DatabaseURL
	}
	sep := "?"
	if strings.Contains(c.DatabaseURL, "?") {
		sep = "&"
	}
	return c.DatabaseURL + sep + "sslmode=require"
}
