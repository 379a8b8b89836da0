package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process settings read from the environment.
type Config struct {
	Addr              string
	DatabaseURL       string
	RedisAddr         string
	RateLimitCapacity int
	RateLimitRefill   time.Duration
	SubmissionWindow  time.Duration
	LogLevel          string
	TaxTablesFile     string
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Addr:          getEnv("ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DB_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		TaxTablesFile: os.Getenv("TAX_TABLES_FILE"),
	}

	var err error
	if cfg.RateLimitCapacity, err = getInt("RATE_LIMIT_CAPACITY", 5); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRefill, err = getDuration("RATE_LIMIT_REFILL", time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.SubmissionWindow, err = getDuration("SUBMISSION_WINDOW", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitCapacity <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_CAPACITY must be positive, got %d", cfg.RateLimitCapacity)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, v)
	}
	return d, nil
}
