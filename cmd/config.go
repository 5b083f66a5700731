package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	HTTPPort        string
	AppEnv          string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// IsDevelopment reports whether development-only routes such as the Swagger UI are served.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

// LoadConfig reads the configuration from the process environment after
// loading the given .env files into it. Missing files are skipped; variables
// already set in the environment win over file values.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	config := Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		AppEnv:          envOrDefault("APP_ENV", EnvProduction),
		ShutdownTimeout: 10 * time.Second,
	}

	if err := config.LogLevel.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "INFO"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		config.ShutdownTimeout = timeout
	}

	return config, nil
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
