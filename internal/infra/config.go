package infra

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	FalKey           string
	FalEndpoint      string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	UpstreamTimeout  time.Duration
	MaxBodyBytes     int64
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. A missing FAL_KEY is tolerated here: the service
// must keep running and report the problem per request instead of refusing
// to start.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "3000"),
		FalKey:      os.Getenv("FAL_KEY"),
		FalEndpoint: getEnv("FAL_ENDPOINT", "https://fal.run/fal-ai/nano-banana/edit"),
		// Write timeout is generous: the upstream edit call is synchronous
		// and the response cannot be written until it finishes.
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		UpstreamTimeout:  time.Second * time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 0)),
		MaxBodyBytes:     int64(getEnvInt("MAX_BODY_BYTES", 20<<20)),
	}

	parsed, err := url.Parse(cfg.FalEndpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("FAL_ENDPOINT is not a valid URL: %q", cfg.FalEndpoint)
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be positive")
	}

	return cfg, nil
}

// HasFalKey reports whether an upstream credential was configured.
func (c *Config) HasFalKey() bool {
	return strings.TrimSpace(c.FalKey) != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
