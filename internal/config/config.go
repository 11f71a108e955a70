package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

var (
	ErrInvalidPort       = errors.New("HTTP_PORT must be a number between 1 and 65535")
	ErrInvalidHealthPath = errors.New("HEALTH_PATH must start with / and must not be / or /metrics")
	ErrInvalidLogFormat  = errors.New("LOG_FORMAT must be json or console")
)

// MetricsPath is fixed; HEALTH_PATH may not shadow it.
const MetricsPath = "/metrics"

// Config holds all runtime configuration loaded from environment variables.
// Every field has a default, so an empty environment yields a working server.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Probe
	HealthPath string

	// Web application assets; empty disables the asset routes.
	WebappDir string
	// Asset requests per second across all clients, 0 = unlimited.
	RateLimitRPS int

	// Logging
	LogLevel  zapcore.Level
	LogFormat string
}

func Load() (*Config, error) {
	port := getEnv("HTTP_PORT", "8080")
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidPort, port)
	}

	healthPath := getEnv("HEALTH_PATH", "/health")
	if !strings.HasPrefix(healthPath, "/") || healthPath == "/" || healthPath == MetricsPath {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidHealthPath, healthPath)
	}

	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	format := getEnv("LOG_FORMAT", "json")
	if format != "json" && format != "console" {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidLogFormat, format)
	}

	return &Config{
		HTTPPort:        port,
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),

		HealthPath: healthPath,

		WebappDir:    os.Getenv("WEBAPP_DIR"),
		RateLimitRPS: getInt("RATE_LIMIT_RPS", 50),

		LogLevel:  level,
		LogFormat: format,
	}, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return defaultVal
}
