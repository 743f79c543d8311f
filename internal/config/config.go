// Package config handles configuration loading for the portfolio backend.
package config

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the backend.
type Config struct {
	Port           string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	SessionSecret  string
	SessionExpiry  time.Duration
	AllowedOrigins []string
	CookieDomain   string
	CookieSecure   bool
	Environment    string
}

// Load reads configuration from environment variables. A local .env file
// is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DBHost:         getEnvRequired("DB_HOST"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnvRequired("DB_USER"),
		DBPassword:     getEnvRequired("DB_PASSWORD"),
		DBName:         getEnvRequired("DB_NAME"),
		RedisHost:      getEnvRequired("REDIS_HOST"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		SessionSecret:  getEnvRequired("SESSION_SECRET"),
		SessionExpiry:  parseDuration(getEnv("SESSION_EXPIRY", "1h"), time.Hour),
		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		CookieDomain:   getEnv("COOKIE_DOMAIN", ""),
		CookieSecure:   getEnv("COOKIE_SECURE", "true") == "true",
		Environment:    getEnv("ENVIRONMENT", "development"),
	}
}

// CookieSameSite returns the SameSite policy for the session cookie.
// Lax keeps top-level navigation working while still blunting CSRF.
func (c *Config) CookieSameSite() http.SameSite {
	return http.SameSiteLaxMode
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvRequired(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}
