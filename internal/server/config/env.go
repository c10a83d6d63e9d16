package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	ADDRESS                  HTTP bind address
//	DATABASE_DSN             PostgreSQL DSN
//	SESSION_TOKEN_VALIDITY   session token validity (Go duration, e.g. "1h")
//	BCRYPT_COST              bcrypt work factor
//	REQUEST_TIMEOUT          per-request store timeout (Go duration)
//
// Unset variables leave the corresponding field untouched; values that fail
// to parse are ignored rather than aborting startup.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SESSION_TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v, ok := os.LookupEnv("REQUEST_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.RequestTimeout = d
		}
	}
}
