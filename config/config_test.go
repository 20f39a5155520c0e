package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Contains(t, cfg.Database.DSN, "parseTime=True")
	// Conditional updates in the repositories depend on matched-rows
	// reporting from the driver.
	assert.Contains(t, cfg.Database.DSN, "clientFoundRows=true")
	assert.Equal(t, "lokerhub", cfg.JWT.Issuer)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg := Load()
	assert.Equal(t, "9090", cfg.Server.Port)
}
