// Package config loads process configuration for the sheetread CLI from the
// environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/parser"
)

// Environment variables read by Load.
const (
	EnvEngine   = "SHEETREAD_ENGINE"
	EnvWorkers  = "SHEETREAD_WORKERS"
	EnvLogLevel = "SHEETREAD_LOG_LEVEL"
	EnvPassword = "SHEETREAD_PASSWORD"
)

// Config holds the defaults for CLI flags.
type Config struct {
	Engine   string
	Workers  int
	LogLevel string
	Password string
}

// Load reads configuration from the environment. The given .env files are
// loaded first, ".env" when none are given; missing files are skipped and
// variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	workers, err := getEnvIntOrDefault(EnvWorkers, 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Engine:   getEnvOrDefault(EnvEngine, parser.ExcelizeEngine),
		Workers:  workers,
		LogLevel: getEnvOrDefault(EnvLogLevel, logrus.WarnLevel.String()),
		Password: os.Getenv(EnvPassword),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%s must not be negative, got %d", EnvWorkers, c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
