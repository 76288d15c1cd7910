// Package config loads runtime settings from the environment with
// development defaults.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the bloglist server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - SQLitePath: path of the SQLite database file.
//   - JWTSecret: HMAC secret for signing identity tokens (HS256). The
//     default is for development only.
//   - TokenTTL: identity token lifetime; zero issues tokens without
//     an expiry claim.
//   - OtelAddr: OTLP collector endpoint; empty disables telemetry export.
type Config struct {
	Addr       string
	SQLitePath string
	JWTSecret  string
	TokenTTL   time.Duration
	OtelAddr   string
}

// Load reads the configuration from the environment.
func Load() *Config {
	cfg := &Config{
		Addr:       ":3003",
		SQLitePath: "./bloglist.db",
		JWTSecret:  "dev-only-secret",
		TokenTTL:   0,
		OtelAddr:   "",
	}

	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenTTL = d
		}
	}
	if v := os.Getenv("OTEL_ADDR"); v != "" {
		cfg.OtelAddr = v
	}

	return cfg
}
