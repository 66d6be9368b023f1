package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App        AppConfig
	ProfileAPI ProfileAPIConfig
	JWT        JWTConfig
	Redis      RedisConfig
	Database   DatabaseConfig
	Webhook    WebhookConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// ProfileAPIConfig points at the external profile collaborator that owns the
// persisted candidate record.
type ProfileAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type JWTConfig struct {
	AccessSecret string
}

type RedisConfig struct {
	Host       string
	Port       string
	Password   string
	SessionTTL time.Duration
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

// WebhookConfig holds the shared secret the n8n workflows present on relay
// calls.
type WebhookConfig struct {
	InternalToken string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.ProfileAPI = ProfileAPIConfig{
		BaseURL: req("PROFILE_API_URL"),
		Timeout: durationOr(opt("PROFILE_API_TIMEOUT"), 10*time.Second),
	}

	cfg.JWT = JWTConfig{
		AccessSecret: req("JWT_ACCESS_SECRET"),
	}

	cfg.Redis = RedisConfig{
		Host:       opt("REDIS_HOST"),
		Port:       opt("REDIS_PORT"),
		Password:   opt("REDIS_PASSWORD"),
		SessionTTL: durationOr(opt("SESSION_TTL"), 2*time.Hour),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: durationOr(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
		PoolMaxConns:   int32Or(opt("DB_POOL_MAX_CONNS"), 0),
	}

	cfg.Webhook = WebhookConfig{
		InternalToken: req("WEBHOOK_INTERNAL_TOKEN"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func durationOr(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func int32Or(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 0 {
		return fallback
	}
	return int32(n)
}
