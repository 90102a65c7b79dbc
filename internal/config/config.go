// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/plantview/plantview-cli/internal/errors"
)

type Config struct {
	APIURL          string        `mapstructure:"api_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	PreviewLimit    int           `mapstructure:"preview_limit"`
	PreviewMaxPages int           `mapstructure:"preview_max_pages"`
	ScrollThreshold int           `mapstructure:"scroll_threshold"`
	Debug           bool          `mapstructure:"debug"`
	LogLevel        string        `mapstructure:"log_level"`
}

var (
	defaultConfig = Config{
		APIURL:          "http://localhost:3001",
		Timeout:         30 * time.Second,
		PreviewLimit:    60,
		PreviewMaxPages: 10,
		ScrollThreshold: 3,
		Debug:           false,
		LogLevel:        "info",
	}
)

// Default returns a copy of the built-in configuration
func Default() *Config {
	cfg := defaultConfig
	return &cfg
}

// DefaultConfigFile returns $XDG_CONFIG_HOME/plantview/config.yaml
func DefaultConfigFile() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = xdg.ConfigHome
	}
	return filepath.Join(configDir, "plantview", "config.yaml")
}

func newViper(configFile string) *viper.Viper {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Dir(DefaultConfigFile()))
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("api_url", defaultConfig.APIURL)
	v.SetDefault("timeout", defaultConfig.Timeout)
	v.SetDefault("preview_limit", defaultConfig.PreviewLimit)
	v.SetDefault("preview_max_pages", defaultConfig.PreviewMaxPages)
	v.SetDefault("scroll_threshold", defaultConfig.ScrollThreshold)
	v.SetDefault("debug", defaultConfig.Debug)
	v.SetDefault("log_level", defaultConfig.LogLevel)

	return v
}

// Load reads the config file (if any), applies PLANTVIEW_* environment
// overrides and validates the result. A missing file is not an error.
func Load(configFile string) (*Config, error) {
	v := newViper(configFile)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save writes cfg as YAML. An empty configFile uses DefaultConfigFile.
func Save(cfg *Config, configFile string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if configFile == "" {
		configFile = DefaultConfigFile()
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("api_url", cfg.APIURL)
	v.Set("timeout", cfg.Timeout.String())
	v.Set("preview_limit", cfg.PreviewLimit)
	v.Set("preview_max_pages", cfg.PreviewMaxPages)
	v.Set("scroll_threshold", cfg.ScrollThreshold)
	v.Set("debug", cfg.Debug)
	v.Set("log_level", cfg.LogLevel)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks value ranges and the API URL
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &errors.ValidationError{Field: "api_url", Value: c.APIURL, Message: "must be an http(s) URL"}
	}
	if c.Timeout <= 0 {
		return &errors.ValidationError{Field: "timeout", Value: c.Timeout, Message: "must be positive"}
	}
	if c.PreviewLimit <= 0 {
		return &errors.ValidationError{Field: "preview_limit", Value: c.PreviewLimit, Message: "must be positive"}
	}
	if c.PreviewMaxPages <= 0 {
		return &errors.ValidationError{Field: "preview_max_pages", Value: c.PreviewMaxPages, Message: "must be positive"}
	}
	if c.ScrollThreshold < 0 {
		return &errors.ValidationError{Field: "scroll_threshold", Value: c.ScrollThreshold, Message: "must not be negative"}
	}
	return nil
}

// normalizeKey accepts both "api-url" and "api_url"
func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}

// Keys lists the settable configuration keys in CLI form
func Keys() []string {
	keys := []string{"api-url", "timeout", "preview-limit", "preview-max-pages", "scroll-threshold", "debug", "log-level"}
	sort.Strings(keys)
	return keys
}

// Get returns the string form of a single key
func (c *Config) Get(key string) (string, error) {
	switch normalizeKey(key) {
	case "api_url":
		return c.APIURL, nil
	case "timeout":
		return c.Timeout.String(), nil
	case "preview_limit":
		return strconv.Itoa(c.PreviewLimit), nil
	case "preview_max_pages":
		return strconv.Itoa(c.PreviewMaxPages), nil
	case "scroll_threshold":
		return strconv.Itoa(c.ScrollThreshold), nil
	case "debug":
		return strconv.FormatBool(c.Debug), nil
	case "log_level":
		return c.LogLevel, nil
	}
	return "", fmt.Errorf("unknown configuration key: %s", key)
}

// Set parses value into key. The result is validated before it is kept.
func (c *Config) Set(key, value string) error {
	updated := *c

	switch normalizeKey(key) {
	case "api_url":
		updated.APIURL = strings.TrimSpace(value)
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return &errors.ValidationError{Field: "timeout", Value: value, Message: "must be a duration such as 30s"}
		}
		updated.Timeout = d
	case "preview_limit", "preview_max_pages", "scroll_threshold":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &errors.ValidationError{Field: normalizeKey(key), Value: value, Message: "must be an integer"}
		}
		switch normalizeKey(key) {
		case "preview_limit":
			updated.PreviewLimit = n
		case "preview_max_pages":
			updated.PreviewMaxPages = n
		default:
			updated.ScrollThreshold = n
		}
	case "debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &errors.ValidationError{Field: "debug", Value: value, Message: "must be true or false"}
		}
		updated.Debug = b
	case "log_level":
		updated.LogLevel = strings.ToLower(strings.TrimSpace(value))
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	if err := updated.Validate(); err != nil {
		return err
	}
	*c = updated
	return nil
}
