package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be time.ParseDuration strings.
	jsonBody := `{
		"admin": {
			"default_password": "pw",
			"security_question": "favourite color?",
			"security_answer": "green",
			"session_duration": "72h",
			"max_login_attempts": 4,
			"lockout_duration": "10m"
		},
		"security": {
			"hash_salt": "json_salt",
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer"
		},
		"catalog": { "initial_load": 8, "models_per_load": 8 },
		"storage": { "db": { "dsn": "json.db" } }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "pw", cfg.Admin.DefaultPassword)
	assert.Equal(t, "green", cfg.Admin.SecurityAnswer)
	assert.Equal(t, 72*time.Hour, cfg.Admin.SessionDuration)
	assert.Equal(t, 4, cfg.Admin.MaxLoginAttempts)
	assert.Equal(t, 10*time.Minute, cfg.Admin.LockoutDuration)
	assert.Equal(t, "json_salt", cfg.Security.HashSalt)
	assert.Equal(t, "jwt_secret", cfg.Security.TokenSignKey)
	assert.Equal(t, 8, cfg.Catalog.InitialLoad)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{"admin": {"lockout_duration": 900000000000}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Admin.LockoutDuration)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedBody(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{not json`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}
