package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"menu-manager/internal/controllers"
	"menu-manager/internal/logger"
	"menu-manager/internal/models"
)

// DefaultPath is read when MENU_CONFIG is not set. Its absence is not an error.
const DefaultPath = "menu-manager.yaml"

type Config struct {
	Currency           string
	AckDelay           time.Duration
	RequireDescription bool
	DefaultFilter      string
	LogLevel           string
	JSONLogs           bool
	Window             WindowConfig
}

type WindowConfig struct {
	Width  float32
	Height float32
}

type fileConfig struct {
	Currency           *string `yaml:"currency"`
	AckDelay           *string `yaml:"ack_delay"`
	RequireDescription *bool   `yaml:"require_description"`
	DefaultFilter      *string `yaml:"default_filter"`
	LogLevel           *string `yaml:"log_level"`
	JSONLogs           *bool   `yaml:"json_logs"`
	Window             *struct {
		Width  float32 `yaml:"width"`
		Height float32 `yaml:"height"`
	} `yaml:"window"`
}

func Default() Config {
	return Config{
		Currency:      "R",
		AckDelay:      time.Second,
		DefaultFilter: string(models.Starter),
		LogLevel:      "info",
		Window: WindowConfig{
			Width:  420,
			Height: 760,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order of precedence (environment wins).
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if envPath := os.Getenv("MENU_CONFIG"); envPath != "" {
		path = envPath
		explicit = true
	}
	if path == "" {
		path = DefaultPath
	}

	if err := cfg.applyFile(path, explicit); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse yaml: %w", err)
	}

	if fc.Currency != nil {
		c.Currency = *fc.Currency
	}
	if fc.AckDelay != nil {
		delay, err := time.ParseDuration(*fc.AckDelay)
		if err != nil {
			return fmt.Errorf("invalid ack_delay: %w", err)
		}
		c.AckDelay = delay
	}
	if fc.RequireDescription != nil {
		c.RequireDescription = *fc.RequireDescription
	}
	if fc.DefaultFilter != nil {
		c.DefaultFilter = *fc.DefaultFilter
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.JSONLogs != nil {
		c.JSONLogs = *fc.JSONLogs
	}
	if fc.Window != nil {
		c.Window.Width = fc.Window.Width
		c.Window.Height = fc.Window.Height
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.Currency = getEnv("MENU_CURRENCY", c.Currency)
	c.DefaultFilter = getEnv("MENU_DEFAULT_FILTER", c.DefaultFilter)

	if v := os.Getenv("MENU_ACK_DELAY"); v != "" {
		delay, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid MENU_ACK_DELAY: %w", err)
		}
		c.AckDelay = delay
	}

	if v := os.Getenv("MENU_REQUIRE_DESCRIPTION"); v != "" {
		required, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid MENU_REQUIRE_DESCRIPTION: %w", err)
		}
		c.RequireDescription = required
	}

	if v := os.Getenv("MENU_JSON_LOGS"); v != "" {
		jsonLogs, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid MENU_JSON_LOGS: %w", err)
		}
		c.JSONLogs = jsonLogs
	}

	switch {
	case os.Getenv("MENU_LOG_LEVEL") != "":
		c.LogLevel = os.Getenv("MENU_LOG_LEVEL")
	case os.Getenv("LOG_LEVEL") != "":
		c.LogLevel = os.Getenv("LOG_LEVEL")
	case os.Getenv("DEBUG") == "1":
		c.LogLevel = "debug"
	}

	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Currency) == "" {
		return errors.New("currency must not be empty")
	}
	if c.AckDelay < 0 {
		return fmt.Errorf("ack delay must not be negative, got %s", c.AckDelay)
	}
	filter, err := controllers.ParseFilter(c.DefaultFilter)
	if err != nil {
		return fmt.Errorf("invalid default filter: %w", err)
	}
	c.DefaultFilter = filter
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Level returns the parsed log level; Validate guarantees it is known
func (c *Config) Level() zerolog.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
