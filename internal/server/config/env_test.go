package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	t.Run("overlays set variables", func(t *testing.T) {
		t.Setenv("ADDRESS", ":8081")
		t.Setenv("DATABASE_DSN", "postgres://env/db")
		t.Setenv("SESSION_TOKEN_VALIDITY", "45m")
		t.Setenv("BCRYPT_COST", "14")
		t.Setenv("REQUEST_TIMEOUT", "2s")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, ":8081", cfg.EndpointAddr)
		assert.Equal(t, "postgres://env/db", cfg.DatabaseDSN)
		assert.Equal(t, 45*time.Minute, cfg.SessionTokenValidityDuration)
		assert.Equal(t, 14, cfg.BcryptCost)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	})

	t.Run("unparseable values are ignored", func(t *testing.T) {
		t.Setenv("SESSION_TOKEN_VALIDITY", "soon")
		t.Setenv("BCRYPT_COST", "high")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, 1*time.Hour, cfg.SessionTokenValidityDuration)
		assert.Equal(t, 10, cfg.BcryptCost)
	})
}
