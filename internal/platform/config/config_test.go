package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NEXT_PUBLIC_API_URL",
		"BRAIN_API_URL",
		"BRAIN_API_TIMEOUT_SECONDS",
		"BRAIN_AUTHORIZED_EMAIL",
		"BRAIN_LOG_FILE",
		"BRAIN_LOG_LEVEL",
		"BRAIN_GLAMOUR_STYLE",
		"BRAIN_CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BRAIN_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.API.BaseURL)
	assert.Equal(t, DefaultAuthorizedEmail, cfg.Auth.AuthorizedEmail)
	assert.Equal(t, time.Duration(0), cfg.Timeout())
	assert.Equal(t, "dark", cfg.UI.GlamourStyle)
}

func TestLoadFileThenEnvThenFlag(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "brain.toml")
	content := `
[api]
base_url = "http://file.example:9000/"
timeout_seconds = 30

[auth]
authorized_email = "site@example.com"

[log]
file = "/tmp/brain-test.log"
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(Options{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "http://file.example:9000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "site@example.com", cfg.Auth.AuthorizedEmail)
	assert.Equal(t, "debug", cfg.Log.Level)

	t.Setenv("NEXT_PUBLIC_API_URL", "http://legacy.example")
	cfg, err = Load(Options{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "http://legacy.example", cfg.API.BaseURL)

	t.Setenv("BRAIN_API_URL", "https://env.example")
	cfg, err = Load(Options{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.API.BaseURL)

	cfg, err = Load(Options{ConfigFile: path, APIURL: "http://flag.example:1/"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example:1", cfg.API.BaseURL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("BRAIN_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load(Options{APIURL: "localhost:8000"})
	require.Error(t, err)

	_, err = Load(Options{APIURL: "ftp://example.com"})
	require.Error(t, err)

	_, err = Load(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
	require.Error(t, err, "explicit config file must exist")

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[api\nbase_url="), 0o600))
	_, err = Load(Options{ConfigFile: bad})
	require.Error(t, err)
}

func TestValidateRequiresEmailAndNonNegativeTimeout(t *testing.T) {
	t.Parallel()
	cfg := defaultConfig()
	cfg.Auth.AuthorizedEmail = ""
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.API.TimeoutSeconds = -1
	require.Error(t, cfg.Validate())

	require.NoError(t, defaultConfig().Validate())
}
