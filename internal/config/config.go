package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	ServerPort string
	LogLevel   string

	APIBaseURL string
	APITimeout time.Duration

	SessionSecret       string
	SessionTTL          time.Duration
	SessionCookieSecure bool
	RedisURL            string

	AuditDBUrl        string
	AuditKafkaBrokers string
	AuditKafkaTopic   string
	Timezone          string

	CORSOrigins []string

	OTelEnabled     bool
	OTelEndpoint    string
	OTelSampleRatio float64
}

// Load reads the process environment. A .env file in the working directory,
// if present, fills in variables that are not already set.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		APIBaseURL: strings.TrimRight(getEnv("APPOINTMENT_API_URL", "http://localhost:5056"), "/"),
		APITimeout: getDuration("API_TIMEOUT", 30*time.Second),

		SessionSecret:       getEnv("SESSION_SECRET", "changeme"),
		SessionTTL:          getDuration("SESSION_TTL", 24*time.Hour),
		SessionCookieSecure: getBool("SESSION_COOKIE_SECURE", false),
		RedisURL:            getEnv("REDIS_URL", ""),

		AuditDBUrl:        getEnv("AUDIT_DATABASE_URL", ""),
		AuditKafkaBrokers: getEnv("AUDIT_KAFKA_BROKERS", ""),
		AuditKafkaTopic:   getEnv("AUDIT_KAFKA_TOPIC", "salon.audit"),
		Timezone:          getEnv("SALON_TIMEZONE", "UTC"),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "")),

		OTelEnabled:     getBool("OTEL_ENABLED", false),
		OTelEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		OTelSampleRatio: getFloat("OTEL_SAMPLING_RATIO", 1),
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			return f
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
