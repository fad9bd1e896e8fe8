package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// AppConfig is built once at startup and handed to constructors; nothing reads
// the environment at call time.
type AppConfig struct {
	GeocodingAPIKey string
	WeatherAPIKey   string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.GeocodingAPIKey = os.Getenv("GEOCODING_API_KEY")
	cfg.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.SMTPPort = getenvInt("SMTP_PORT", 587)
	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPass = os.Getenv("SMTP_PASS")

	cfg.DBHost = getenvDefault("DB_HOST", "localhost")
	cfg.DBPort = getenvDefault("DB_PORT", "5432")
	cfg.DBUser = getenvDefault("DB_USER", "postgres")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = getenvDefault("DB_NAME", "weather")
	cfg.DBSSLMode = getenvDefault("DB_SSLMODE", "disable")

	cfg.Port = getenvDefault("PORT", "3000")

	return cfg, nil
}

// DSN builds the postgres connection string.
func (c *AppConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
