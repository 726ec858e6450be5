// Package config loads service configuration from the environment and
// manages the persisted user settings file.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DBConfig holds database configuration
type DBConfig struct {
	Path string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	SigningKey      string
	ExpirationHours int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// ReportConfig holds artifact output directories
type ReportConfig struct {
	Dir        string
	TicketsDir string
}

// Config holds all configuration
type Config struct {
	ServiceName  string
	Server       ServerConfig
	DB           DBConfig
	JWT          JWTConfig
	Log          LogConfig
	Reports      ReportConfig
	SettingsPath string
}

// Load reads configuration from environment variables, with defaults
// suitable for a local single-user deployment. Callers load .env first
// (godotenv) so the variables are already present here.
func Load() (*Config, error) {
	cfg := &Config{
		ServiceName: "stockroom",
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		DB: DBConfig{
			Path: getEnv("DB_PATH", "stockroom.db"),
		},
		JWT: JWTConfig{
			SigningKey:      getEnv("JWT_SIGNING_KEY", ""),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Reports: ReportConfig{
			Dir:        getEnv("REPORTS_DIR", "reports"),
			TicketsDir: getEnv("TICKETS_DIR", "tickets"),
		},
		SettingsPath: getEnv("SETTINGS_PATH", "stockroom.settings"),
	}

	if cfg.JWT.SigningKey == "" {
		if cfg.Server.Env == "production" {
			return nil, fmt.Errorf("JWT_SIGNING_KEY is required in production")
		}
		cfg.JWT.SigningKey = "dev-only-signing-key"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
