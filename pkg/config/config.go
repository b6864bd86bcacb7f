// Package config loads the persona dashboard server settings. Values are
// layered: built-in defaults, an optional YAML file, then environment
// variables (a .env file is read first when present).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PERSONA_"

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config holds everything the server needs to boot.
type Config struct {
	Addr     string         `yaml:"addr"`
	BasePath string         `yaml:"base_path"`
	Log      LogConfig      `yaml:"log"`
	Session  SessionConfig  `yaml:"session"`
	Charts   ChartsConfig   `yaml:"charts"`
	Activity ActivityConfig `yaml:"activity"`
}

// LogConfig selects the zerolog level and output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SessionConfig controls new viewer sessions.
type SessionConfig struct {
	CookieName     string        `yaml:"cookie_name"`
	ShowOnboarding bool          `yaml:"show_onboarding"`
	IdleTTL        time.Duration `yaml:"idle_ttl"`
}

// ChartsConfig tunes the usage chart.
type ChartsConfig struct {
	CacheTTL   time.Duration `yaml:"cache_ttl"`
	Type       string        `yaml:"type"`
	AssetsHost string        `yaml:"assets_host"`
}

// ActivityConfig points the "Recent Conversations" card at a remote feed.
// An empty URL keeps the built-in sample list.
type ActivityConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr: ":8080",
		Log: LogConfig{
			Level:  "info",
			Format: FormatJSON,
		},
		Session: SessionConfig{
			CookieName:     "persona_session",
			ShowOnboarding: true,
			IdleTTL:        30 * time.Minute,
		},
		Charts: ChartsConfig{
			CacheTTL: 5 * time.Minute,
			Type:     "line",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// set), the given dotenv files and the process environment.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := Decode(bytes.NewReader(raw), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := loadDotenv(envFiles...); err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Decode reads YAML into cfg, rejecting unknown keys.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

func loadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return nil
}

// ApplyEnv overlays PERSONA_* variables resolved through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("ADDR", &c.Addr)
	str("BASE_PATH", &c.BasePath)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("COOKIE_NAME", &c.Session.CookieName)
	str("CHART_TYPE", &c.Charts.Type)
	str("CHART_ASSETS_HOST", &c.Charts.AssetsHost)
	str("ACTIVITY_URL", &c.Activity.URL)
	str("ACTIVITY_API_KEY", &c.Activity.APIKey)

	if v, ok := lookup(EnvPrefix + "SHOW_ONBOARDING"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %sSHOW_ONBOARDING: %w", EnvPrefix, err)
		}
		c.Session.ShowOnboarding = b
	}
	if err := duration(lookup, "CHART_CACHE_TTL", &c.Charts.CacheTTL); err != nil {
		return err
	}
	return duration(lookup, "SESSION_IDLE_TTL", &c.Session.IdleTTL)
}

func duration(lookup func(string) (string, bool), key string, dst *time.Duration) error {
	v, ok := lookup(EnvPrefix + key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
	}
	*dst = d
	return nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is required")
	}
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("config: base_path %q must start with /", c.BasePath)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	switch c.Log.Format {
	case FormatJSON, FormatConsole:
	default:
		return fmt.Errorf("config: unsupported log format %q", c.Log.Format)
	}
	switch c.Charts.Type {
	case "line", "bar":
	default:
		return fmt.Errorf("config: unsupported chart type %q", c.Charts.Type)
	}
	if c.Charts.CacheTTL < 0 {
		return errors.New("config: chart cache ttl cannot be negative")
	}
	if c.Session.IdleTTL < 0 {
		return errors.New("config: session idle ttl cannot be negative")
	}
	return nil
}

// Logger builds the zerolog logger described by the log section.
func (c Config) Logger(out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("config: log level: %w", err)
	}
	if c.Log.Format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
