package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	HandoffStoreToken = "token"
	HandoffStoreRedis = "redis"

	defaultPort       = "8888"
	defaultHandoffTTL = 10 * time.Minute
	developmentSecret = "formflow-dev-secret" // fallback for development
)

type Config struct {
	Port           string
	AllowedOrigins string
	HandoffStore   string
	RedisURI       string
	HandoffSecret  string
	HandoffTTL     time.Duration
	LogLevel       string

	// DotEnvLoaded is false when no .env file was found.
	DotEnvLoaded bool
}

// Load โหลดค่า Environment Variables จากไฟล์ .env (ถ้ามี) แล้วอ่านจาก env
func Load() (*Config, error) {
	loaded := godotenv.Load() == nil
	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		return nil, err
	}
	cfg.DotEnvLoaded = loaded
	return cfg, nil
}

// FromEnv builds a Config from getenv, applying defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:           getenv("APP_URI"),
		AllowedOrigins: getenv("ALLOWED_ORIGINS"),
		HandoffStore:   strings.ToLower(strings.TrimSpace(getenv("HANDOFF_STORE"))),
		RedisURI:       getenv("REDIS_URI"),
		HandoffSecret:  getenv("HANDOFF_SECRET"),
		HandoffTTL:     defaultHandoffTTL,
		LogLevel:       getenv("LOG_LEVEL"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.AllowedOrigins == "" {
		cfg.AllowedOrigins = "*"
	}
	if cfg.HandoffStore == "" {
		cfg.HandoffStore = HandoffStoreToken
	}
	if cfg.HandoffSecret == "" {
		cfg.HandoffSecret = developmentSecret
	}

	if raw := getenv("HANDOFF_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: HANDOFF_TTL: %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("config: HANDOFF_TTL must be positive, got %s", raw)
		}
		cfg.HandoffTTL = ttl
	}

	switch cfg.HandoffStore {
	case HandoffStoreToken:
	case HandoffStoreRedis:
		if cfg.RedisURI == "" {
			return nil, fmt.Errorf("config: HANDOFF_STORE=redis requires REDIS_URI")
		}
	default:
		return nil, fmt.Errorf("config: unknown HANDOFF_STORE %q", cfg.HandoffStore)
	}

	return cfg, nil
}
