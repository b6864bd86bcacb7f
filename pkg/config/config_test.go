package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.Session.ShowOnboarding)
	assert.Equal(t, 5*time.Minute, cfg.Charts.CacheTTL)
}

func TestLoadLayersYAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "persona.yaml")
	yamlDoc := "addr: \":9000\"\nbase_path: /admin\nlog:\n  level: debug\ncharts:\n  cache_ttl: 30s\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))

	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("PERSONA_COOKIE_NAME=from_dotenv\n"), 0o600))
	t.Setenv("PERSONA_ADDR", ":9100")
	t.Setenv("PERSONA_SHOW_ONBOARDING", "false")
	t.Cleanup(func() { os.Unsetenv("PERSONA_COOKIE_NAME") })

	cfg, err := Load(path, envFile)
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Addr)
	assert.Equal(t, "/admin", cfg.BasePath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 30*time.Second, cfg.Charts.CacheTTL)
	assert.Equal(t, "from_dotenv", cfg.Session.CookieName)
	assert.False(t, cfg.Session.ShowOnboarding)
}

func TestLoadMissingDotenvIsIgnored(t *testing.T) {
	cfg, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default().Addr, cfg.Addr)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	err := Decode(strings.NewReader("adress: \":1\"\n"), &cfg)
	require.Error(t, err)
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(key string) (string, bool) {
		if key == "PERSONA_CHART_CACHE_TTL" {
			return "soon", true
		}
		return "", false
	})
	require.Error(t, err)
}

func TestApplyEnvSessionIdleTTL(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	err := cfg.ApplyEnv(func(key string) (string, bool) {
		if key == "PERSONA_SESSION_IDLE_TTL" {
			return "2h", true
		}
		return "", false
	})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)

	cfg = Default()
	require.NoError(t, Decode(strings.NewReader("session:\n  idle_ttl: 0s\n"), &cfg))
	assert.Zero(t, cfg.Session.IdleTTL)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"format", func(c *Config) { c.Log.Format = "xml" }},
		{"level", func(c *Config) { c.Log.Level = "loud" }},
		{"base path", func(c *Config) { c.BasePath = "admin" }},
		{"chart type", func(c *Config) { c.Charts.Type = "pie" }},
		{"ttl", func(c *Config) { c.Charts.CacheTTL = -time.Second }},
		{"idle ttl", func(c *Config) { c.Session.IdleTTL = -time.Minute }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoggerHonorsLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "warn"
	var buf bytes.Buffer
	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
