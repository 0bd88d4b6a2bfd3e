// Package config loads the viewer configuration from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mgerb/subreddit-viewer/feed"
	"github.com/mgerb/subreddit-viewer/model"
	"gopkg.in/yaml.v3"
)

const appName = "subreddit-viewer"

// Config holds all viewer settings.
type Config struct {
	Subreddit  string `yaml:"subreddit"`
	BaseURL    string `yaml:"base_url"`
	UserAgent  string `yaml:"user_agent"`
	Timeout    string `yaml:"timeout"`
	Limit      int    `yaml:"limit"`
	DefaultTab string `yaml:"default_tab"`
	Theme      string `yaml:"theme"` // dark, light

	Logging LoggingConfig `yaml:"logging"`
	Archive ArchiveConfig `yaml:"archive"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// ArchiveConfig configures the bolt post archive.
type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	cacheDir := userDir(os.UserCacheDir)
	return &Config{
		Subreddit:  feed.DefaultSubreddit,
		BaseURL:    feed.DefaultBaseURL,
		UserAgent:  feed.DefaultUserAgent,
		Timeout:    "10s",
		DefaultTab: string(model.DefaultTab),
		Theme:      "dark",
		Logging: LoggingConfig{
			File:  filepath.Join(cacheDir, appName, appName+".log"),
			Level: "info",
		},
		Archive: ArchiveConfig{
			Path: filepath.Join(cacheDir, appName, "reddit.db"),
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/subreddit-viewer/config.yaml.
func DefaultPath() string {
	return filepath.Join(userDir(os.UserConfigDir), appName, "config.yaml")
}

func userDir(f func() (string, error)) string {
	dir, err := f()
	if err != nil {
		return "."
	}
	return dir
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Subreddit = getenv("SUBREDDIT_VIEWER_SUBREDDIT", c.Subreddit)
	c.BaseURL = getenv("SUBREDDIT_VIEWER_BASE_URL", c.BaseURL)
	c.Timeout = getenv("SUBREDDIT_VIEWER_TIMEOUT", c.Timeout)
	c.Archive.Path = getenv("SUBREDDIT_VIEWER_ARCHIVE", c.Archive.Path)
	if v := os.Getenv("SUBREDDIT_VIEWER_ARCHIVE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Archive.Enabled = b
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Validate checks the settings the client cannot work without.
func (c *Config) Validate() error {
	if c.Subreddit == "" {
		return errors.New("subreddit is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base_url %q", c.BaseURL)
	}
	if _, err := model.ParseTab(c.DefaultTab); err != nil {
		return fmt.Errorf("default_tab: %w", err)
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", d)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}
	return nil
}

// GetTimeout returns the request timeout as a duration.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// Tab returns the configured start tab, falling back to hot.
func (c *Config) Tab() model.Tab {
	t, err := model.ParseTab(c.DefaultTab)
	if err != nil {
		return model.DefaultTab
	}
	return t
}

// NewClient builds the feed client described by the config.
func (c *Config) NewClient() *feed.Client {
	client := feed.NewClient(c.BaseURL, c.Subreddit, c.GetTimeout())
	if c.UserAgent != "" {
		client.UserAgent = c.UserAgent
	}
	client.Limit = c.Limit
	return client
}
