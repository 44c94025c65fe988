package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment configuration shared by the CLI and the server.
type Config struct {
	Dir       string `env:"ARTM_DIR" envDefault:"."`
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":9090"`
	RedisAddr string `env:"REDIS_ADDR"`
	APIKeys   string `env:"API_KEYS"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	// Echo makes the server also render every record it persists.
	Echo bool `env:"ARTM_ECHO" envDefault:"false"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// parseAPIKeys splits API_KEYS on commas and whitespace into a key set.
func parseAPIKeys(s string) map[string]struct{} {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	keys := make(map[string]struct{}, len(fields))
	for _, k := range fields {
		keys[k] = struct{}{}
	}
	return keys
}
