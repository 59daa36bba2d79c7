package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlagSet_AllFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	cfg := parseFlagSet(fs, []string{
		"-d", "custom.db",
		"-config", "conf.json",
		"-default-password", "secret",
		"-security-answer", "blue",
		"-hash-salt", "salt",
		"-session-duration", "48h",
		"-max-login-attempts", "3",
		"-lockout-duration", "5m",
		"-initial-load", "6",
		"-models-per-load", "4",
	})

	assert.Equal(t, "custom.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "conf.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.Admin.DefaultPassword)
	assert.Equal(t, "blue", cfg.Admin.SecurityAnswer)
	assert.Equal(t, "salt", cfg.Security.HashSalt)
	assert.Equal(t, 48*time.Hour, cfg.Admin.SessionDuration)
	assert.Equal(t, 3, cfg.Admin.MaxLoginAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Admin.LockoutDuration)
	assert.Equal(t, 6, cfg.Catalog.InitialLoad)
	assert.Equal(t, 4, cfg.Catalog.ModelsPerLoad)
}

func TestParseFlagSet_NoFlags_ZeroConfig(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	cfg := parseFlagSet(fs, nil)

	assert.Equal(t, "", cfg.Storage.DB.DSN)
	assert.Equal(t, 0, cfg.Admin.MaxLoginAttempts)
	assert.Equal(t, time.Duration(0), cfg.Admin.SessionDuration)
}
