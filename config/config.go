package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"
)

// Config holds everything the process reads from its environment.
type Config struct {
	DatabaseURL    string
	DatabaseName   string
	Port           string
	GinMode        string
	CORSOrigins    []string
	DBLogLevel     logger.LogLevel
	ConnectTimeout time.Duration
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	raw := strings.TrimSpace(os.Getenv("MONGODB_URI"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw == "" {
		return nil, fmt.Errorf("MONGODB_URI (or DATABASE_URL) is not set")
	}

	level, err := parseLogLevel(envOrDefault("DB_LOG_LEVEL", "warn"))
	if err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(envOrDefault("DB_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
	}

	return &Config{
		DatabaseURL:    raw,
		DatabaseName:   envOrDefault("DB_NAME", "test"),
		Port:           envOrDefault("PORT", "3000"),
		GinMode:        envOrDefault("GIN_MODE", "release"),
		CORSOrigins:    splitList(os.Getenv("CORS_ORIGINS")),
		DBLogLevel:     level,
		ConnectTimeout: timeout,
	}, nil
}

// splitList splits a comma separated value, dropping blank entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseLogLevel(s string) (logger.LogLevel, error) {
	switch strings.ToLower(s) {
	case "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "warn":
		return logger.Warn, nil
	case "info":
		return logger.Info, nil
	}
	return 0, fmt.Errorf("invalid DB_LOG_LEVEL %q", s)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
