// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. Local development
values may live in .env.local or .env, which are loaded with 'joho/godotenv'
without overriding variables already present in the environment.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFiles lists the dotenv files consulted by [LoadDotEnv], in priority order.
var DefaultEnvFiles = []string{".env.local", ".env"}

// # Configuration Schema

// Config holds all runtime configuration for the catalog API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Session registry (Redis). Empty keeps sessions in process memory.
	RedisURL string `env:"REDIS_URL"`

	// SessionSecret signs the session cookie token.
	SessionSecret string `env:"SESSION_SECRET,required"`

	// Cross-Origin Resource Sharing, comma separated hosts. A host also admits its subdomains.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// TrustProxyHeaders honors X-Real-IP / X-Forwarded-For. Enable only behind a
	// reverse proxy that overwrites them.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	// Chat proxy (OpenAI). An empty key disables the chat endpoint.
	OpenAIAPIKey         string `env:"OPENAI_API_KEY"`
	ChatModel            string `env:"CHAT_MODEL"              envDefault:"gpt-4.1-nano"`
	ChatSystemPromptPath string `env:"CHAT_SYSTEM_PROMPT_PATH"`

	// Seeder credentials (cmd/seed only), checked by [Config.ValidateSeed]
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD"`
	SeedUserPassword  string `env:"SEED_USER_PASSWORD"`
}

var (
	// ErrSeedPasswordsMissing is returned by the seeder when either account password is unset.
	ErrSeedPasswordsMissing = errors.New("config: SEED_ADMIN_PASSWORD and SEED_USER_PASSWORD are required")

	// ErrSeedPasswordGuessable is returned when a seeded password equals its username.
	ErrSeedPasswordGuessable = errors.New("config: seed passwords must differ from their usernames")
)

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv loads the first existing file of paths into the process environment.
// Variables that are already set win. It returns the file that was loaded, or
// an empty string when none exists.
func LoadDotEnv(paths ...string) (string, error) {
	for _, path := range paths {
		err := godotenv.Load(path)
		if err == nil {
			return path, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return "", fmt.Errorf("config: failed to load %s: %w", path, err)
	}
	return "", nil
}

// ValidateSeed checks the seeder credentials. Both passwords are required and,
// outside development, neither may equal its account name.
func (c *Config) ValidateSeed() error {
	if c.SeedAdminPassword == "" || c.SeedUserPassword == "" {
		return ErrSeedPasswordsMissing
	}

	if !c.IsDevelopment() && (c.SeedAdminPassword == "admin" || c.SeedUserPassword == "user") {
		return ErrSeedPasswordGuessable
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SlogLevel resolves the configured log verbosity. DEBUG=true always wins.
func (c *Config) SlogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OriginAllowed reports whether a CORS origin may receive credentialed responses.
// Development accepts every origin. Otherwise the origin host must equal one of
// the configured hosts or be a subdomain of one.
func (c *Config) OriginAllowed(origin string) bool {
	if c.IsDevelopment() {
		return true
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return false
	}
	host := strings.ToLower(parsed.Hostname())

	for _, allowed := range c.AllowedOrigins {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed == "" {
			continue
		}
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}
