package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-manager/internal/controllers"
	"menu-manager/internal/models"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MENU_CONFIG", "MENU_CURRENCY", "MENU_ACK_DELAY", "MENU_REQUIRE_DESCRIPTION",
		"MENU_DEFAULT_FILTER", "MENU_LOG_LEVEL", "MENU_JSON_LOGS", "LOG_LEVEL", "DEBUG",
	} {
		t.Setenv(key, "")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsWhenDefaultFileMissing(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
currency: "$"
ack_delay: 250ms
require_description: true
default_filter: all
log_level: debug
json_logs: true
window:
  width: 500
  height: 900
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "$", cfg.Currency)
	assert.Equal(t, 250*time.Millisecond, cfg.AckDelay)
	assert.True(t, cfg.RequireDescription)
	assert.Equal(t, controllers.FilterAll, cfg.DefaultFilter)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, WindowConfig{Width: 500, Height: 900}, cfg.Window)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "currency: \"$\"\nlog_level: error\n")
	t.Setenv("MENU_CONFIG", path)
	t.Setenv("MENU_CURRENCY", "EUR ")
	t.Setenv("MENU_ACK_DELAY", "2s")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "EUR ", cfg.Currency)
	assert.Equal(t, 2*time.Second, cfg.AckDelay)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}

func TestDebugFlagRaisesLevel(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("DEBUG", "1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "bad yaml", file: "currency: [unterminated"},
		{name: "bad delay", file: "ack_delay: soon"},
		{name: "empty currency", file: "currency: \"  \""},
		{name: "unknown filter", file: "default_filter: sides"},
		{name: "unknown level", file: "log_level: chatty"},
		{name: "negative delay", env: map[string]string{"MENU_ACK_DELAY": "-1s"}},
		{name: "bad bool", env: map[string]string{"MENU_REQUIRE_DESCRIPTION": "maybe"}},
		{name: "bad window", file: "window:\n  width: 0\n  height: 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeFile(t, tt.file)

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestDefaultFilterIsNormalised(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"ALL", controllers.FilterAll},
		{"Mains", string(models.Main)},
		{" dessert ", string(models.Dessert)},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("MENU_DEFAULT_FILTER", tt.value)

			cfg, err := Load(writeFile(t, "currency: R\n"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.DefaultFilter)
		})
	}
}
