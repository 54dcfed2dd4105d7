package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "3000"
	defaultEnvironment = "development"
	defaultMongoDB     = "coursetrack"
	defaultCallbackURL = "http://localhost:3000"

	// SessionTTL bounds every browser session; there is no sliding expiry.
	SessionTTL = 24 * time.Hour
)

// OAuthProviderConfig holds one provider's client credentials.
type OAuthProviderConfig struct {
	ClientID     string
	ClientSecret string
}

func (c OAuthProviderConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// MongoURI is required; the process refuses to start without a store.
	MongoURI string
	MongoDB  string

	// RedisURL is optional; sessions fall back to the in-memory store.
	RedisURL string

	SessionSecret string
	CallbackURL   string
	Google        OAuthProviderConfig
	GitHub        OAuthProviderConfig
}

// LoadConfig reads configuration from the environment, honoring a local .env
// file when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", defaultPort),
		Environment:   getEnvOrDefault("ENVIRONMENT", defaultEnvironment),
		LogLevel:      parseLogLevel(os.Getenv("LOG_LEVEL")),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       getEnvOrDefault("MONGO_DB", defaultMongoDB),
		RedisURL:      os.Getenv("REDIS_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		CallbackURL:   getEnvOrDefault("CALLBACK_URL", defaultCallbackURL),
		Google: OAuthProviderConfig{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		},
		GitHub: OAuthProviderConfig{
			ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
			ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		},
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
