package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RejectsBadEnvironment(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{Environment: "testing"},
		Logger: LoggerConfig{Level: "info"},
		Data:   DataConfig{BasePath: "/tmp/data"},
		Auth:   AuthConfig{SessionDuration: time.Hour},
	}

	err := cfg.Validate()
	assert.ErrorContains(t, err, "invalid environment")
}

func TestValidate_RejectsBadLogLevel(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "verbose"},
		Data:   DataConfig{BasePath: "/tmp/data"},
		Auth:   AuthConfig{SessionDuration: time.Hour},
	}

	err := cfg.Validate()
	assert.ErrorContains(t, err, "invalid log level")
}

func TestValidate_RejectsNonPositiveSessionDuration(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Data:   DataConfig{BasePath: "/tmp/data"},
	}

	err := cfg.Validate()
	assert.ErrorContains(t, err, "session duration")
}

func TestValidate_AcceptsGoodConfig(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{Environment: "production"},
		Logger: LoggerConfig{Level: "warn"},
		Data:   DataConfig{BasePath: "/var/lib/bookhaven"},
		Auth:   AuthConfig{SessionDuration: 168 * time.Hour},
	}

	assert.NoError(t, cfg.Validate())
}

func TestExpandPath_Tilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandPath("~/bookhaven", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "bookhaven"), got)
}

func TestExpandPath_EmptyUsesDefault(t *testing.T) {
	got, err := expandPath("", "/default/path")
	require.NoError(t, err)
	assert.Equal(t, "/default/path", got)
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("BOOKHAVEN_TEST_KEY", "from-env")

	// Flag wins over env.
	assert.Equal(t, "from-flag", getConfigValue("from-flag", "BOOKHAVEN_TEST_KEY", "default"))
	// Env wins over default.
	assert.Equal(t, "from-env", getConfigValue("", "BOOKHAVEN_TEST_KEY", "default"))
	// Default when nothing else is set.
	assert.Equal(t, "default", getConfigValue("", "BOOKHAVEN_TEST_MISSING", "default"))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("# comment\nBOOKHAVEN_ENV_FILE_KEY=\"quoted\"\n"), 0o600))

	t.Setenv("BOOKHAVEN_ENV_FILE_KEY", "")
	os.Unsetenv("BOOKHAVEN_ENV_FILE_KEY")

	require.NoError(t, loadEnvFile(envPath))
	assert.Equal(t, "quoted", os.Getenv("BOOKHAVEN_ENV_FILE_KEY"))
}
