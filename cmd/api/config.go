package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"fooddelivery/pkg/logger"
)

// config is read from the environment, optionally seeded from a .env file.
type config struct {
	HTTPAddr        string
	TLSCertFile     string
	TLSKeyFile      string
	RedisAddr       string
	IdempotencyTTL  time.Duration
	OtelHost        string
	OtelProbability float64
	PollInterval    time.Duration
	AllowedOrigins  []string
	LogLevel        logger.Level
	ShutdownTimeout time.Duration
}

// loadConfig reads envFile when it exists and then the process environment.
// Variables already set in the environment win over the file.
func loadConfig(envFile string) (config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":5000"),
		TLSCertFile: os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:  os.Getenv("TLS_KEY_FILE"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		OtelHost:    os.Getenv("OTEL_HOST"),
	}

	var err error
	if cfg.IdempotencyTTL, err = durationEnv("IDEMPOTENCY_TTL", 24*time.Hour); err != nil {
		return config{}, err
	}
	if cfg.PollInterval, err = durationEnv("STATUS_POLL_INTERVAL", 2*time.Second); err != nil {
		return config{}, err
	}
	if cfg.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return config{}, err
	}

	p := getEnv("OTEL_PROBABILITY", "1.0")
	if cfg.OtelProbability, err = strconv.ParseFloat(p, 64); err != nil || cfg.OtelProbability < 0 || cfg.OtelProbability > 1 {
		return config{}, fmt.Errorf("OTEL_PROBABILITY: want a number in [0,1], got %q", p)
	}

	if cfg.LogLevel, err = logger.ParseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	for _, o := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if (cfg.TLSCertFile == "") != (cfg.TLSKeyFile == "") {
		return config{}, errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}
	return cfg, nil
}

func (c config) tls() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, v)
	}
	return d, nil
}
