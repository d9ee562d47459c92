// Package config handles TOML-based configuration loading and validation.
// The file is parsed as data only; nothing in it is executed.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultSourceURL is the IPNS page that publishes the linksData listing.
const DefaultSourceURL = "https://ipfs.io/ipns/k51qzi5uqu5di00365631hrj6m22vsjudpbtw8qpfw6g08gf3lsqdn6e89anq5/"

// identPattern matches a JavaScript identifier.
var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Duration wraps time.Duration so it can be written as "20s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds all application configuration.
type Config struct {
	SourceURL      string   `toml:"source_url"`
	Variable       string   `toml:"variable"`
	Timeout        Duration `toml:"timeout"`
	PlaylistTitle  string   `toml:"playlist_title"`
	VLCExtension   bool     `toml:"vlc_extension"`
	NetworkCaching int      `toml:"network_caching"`
	Output         string   `toml:"output"`
	Player         string   `toml:"player"`
	Categories     []string `toml:"categories"`
	CategoriesFile string   `toml:"categories_file"`
	Listen         string   `toml:"listen"`
	LogLevel       string   `toml:"log_level"`
	Debug          bool     `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		SourceURL:      DefaultSourceURL,
		Variable:       "linksData",
		Timeout:        Duration{20 * time.Second},
		PlaylistTitle:  "AceStream Channels",
		VLCExtension:   false,
		NetworkCaching: 1000,
		Output:         "acestream_channels.xspf",
		Player:         "vlc",
		Listen:         ":8080",
		LogLevel:       "info",
		Debug:          false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "acexspf"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "acexspf"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the default config file and merges it with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config file at path and merges it with defaults.
// A missing file yields the defaults.
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
	u, err := url.Parse(c.SourceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("source_url %q must be an absolute http(s) URL", c.SourceURL)
	}

	if !identPattern.MatchString(c.Variable) {
		return fmt.Errorf("variable %q is not a valid identifier", c.Variable)
	}

	if c.Timeout.Duration <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}

	if c.NetworkCaching < 0 {
		return fmt.Errorf("network_caching cannot be negative")
	}

	validPlayers := map[string]bool{"vlc": true, "mpv": true}
	if !validPlayers[strings.ToLower(c.Player)] {
		return fmt.Errorf("unsupported player %q (valid: vlc, mpv)", c.Player)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("unsupported log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}

	if c.Listen == "" {
		return fmt.Errorf("listen address cannot be empty")
	}

	return nil
}

// ExpandPath resolves a leading ~/ in a configured path.
func ExpandPath(p string) (string, error) {
	if strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding home dir: %w", err)
		}
		p = filepath.Join(home, p[2:])
	}
	return filepath.Abs(p)
}
