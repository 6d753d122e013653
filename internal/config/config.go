// Package config handles TOML-based configuration loading and validation.
// The file holds the default player settings applied before any
// command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"ytaudio/internal/media"
	"ytaudio/internal/player"
)

// Config holds all application configuration.
type Config struct {
	Size        string `toml:"size"`
	Theme       string `toml:"theme"` // empty: dark for videos, light for playlists
	HTTPS       bool   `toml:"https"`
	Cookies     bool   `toml:"cookies"`
	HD          bool   `toml:"hd"`
	Autoplay    bool   `toml:"autoplay"`
	JSAPI       bool   `toml:"jsapi"`
	Loop        bool   `toml:"loop"`
	ProgressBar *bool  `toml:"progress_bar"` // nil: decided by size
	TimeCode    bool   `toml:"time_code"`
	Debug       bool   `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Size:    "small",
		HTTPS:   true,
		Cookies: true,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ytaudio"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ytaudio"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path, returning defaults if it is missing.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if _, err := media.ParseSize(c.Size); err != nil {
		return err
	}
	if c.Theme != "" {
		if _, err := media.ParseTheme(c.Theme); err != nil {
			return err
		}
	}
	return nil
}

// Values returns the configured defaults as a player settings map.
// Settings that a playlist would reject are left out when they hold their
// neutral value, so a default config never fails on a playlist source.
func (c *Config) Values() map[string]string {
	values := map[string]string{
		player.SettingSize:     c.Size,
		player.SettingHTTPS:    strconv.FormatBool(c.HTTPS),
		player.SettingHD:       strconv.FormatBool(c.HD),
		player.SettingAutoplay: strconv.FormatBool(c.Autoplay),
		player.SettingJSAPI:    strconv.FormatBool(c.JSAPI),
		player.SettingLoop:     strconv.FormatBool(c.Loop),
	}
	if !c.Cookies {
		values[player.SettingCookies] = "false"
	}
	if c.Theme != "" {
		values[player.SettingTheme] = c.Theme
	}
	if c.ProgressBar != nil {
		values[player.SettingProgressBar] = strconv.FormatBool(*c.ProgressBar)
	}
	if c.TimeCode {
		values[player.SettingTimeCode] = "true"
	}
	return values
}

// Option applies the configured defaults to a player whose source is
// already set. A playlist is locked to the light theme with cookies, so a
// dark theme or disabled cookies from the file are dropped for playlists
// instead of failing the embed.
func (c *Config) Option() player.Option {
	return func(p *player.Player) error {
		values := c.Values()
		if p.IsPlaylist() {
			if t, err := media.ParseTheme(c.Theme); err == nil && t == media.Dark {
				delete(values, player.SettingTheme)
			}
			delete(values, player.SettingCookies)
		}
		return p.ApplySettings(nil, values)
	}
}
