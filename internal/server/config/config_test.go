package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"server"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 24*time.Hour, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.NotEmpty(t, cfg.DatabaseDSN)
}

func TestLoadConfig_Flags(t *testing.T) {
	resetArgs(t, "-a", ":9090", "-d", "postgres://u:p@h/db", "-s", "flagsecret", "-t", "5", "-r", "60")

	cfg := LoadConfig()

	assert.Equal(t, ":9090", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://u:p@h/db", cfg.DatabaseDSN)
	assert.Equal(t, "flagsecret", cfg.SecretKey)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 60*time.Minute, cfg.RefreshTokenValidityDuration)
}

func TestLoadConfig_Env(t *testing.T) {
	resetArgs(t)
	t.Setenv("SERVER_ADDRESS", ":7070")
	t.Setenv("SECRET_KEY", "envsecret")
	t.Setenv("ACCESS_TOKEN_VALIDITY", "30m")
	t.Setenv("RESEND_API_KEY", "re_test")

	cfg := LoadConfig()

	assert.Equal(t, ":7070", cfg.EndpointAddrHTTP)
	assert.Equal(t, "envsecret", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, "re_test", cfg.ResendAPIKey)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")

	jc := map[string]any{
		"endpoint_addr_http":             ":6060",
		"secret_key":                     "jsonsecret",
		"access_token_validity_duration": "45m",
		"mail_from":                      "noreply@library.test",
	}
	b, err := json.Marshal(jc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, ":6060", cfg.EndpointAddrHTTP)
	assert.Equal(t, "jsonsecret", cfg.SecretKey)
	assert.Equal(t, 45*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, "noreply@library.test", cfg.MailFrom)
	// untouched fields keep their defaults
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadConfig_FlagsWinOverJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"endpoint_addr_http": ":6060"}`), 0o600))

	resetArgs(t, "-c", path, "-a", ":5050")

	cfg := LoadConfig()

	assert.Equal(t, ":5050", cfg.EndpointAddrHTTP)
}
