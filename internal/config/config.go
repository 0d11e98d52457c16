package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/halcyonpay/payctl/internal/errors"
)

// DefaultAPIURL is the production gateway endpoint.
const DefaultAPIURL = "https://gateway.halcyonpay.com"

// Environment variables read once at startup. Nothing below the command
// layer reads the environment; everything receives this struct.
const (
	EnvAPIURL       = "PAYCTL_API_URL"
	EnvClientID     = "PAYCTL_CLIENT_ID"
	EnvClientSecret = "PAYCTL_CLIENT_SECRET"
	EnvConfigDir    = "PAYCTL_CONFIG_DIR"
	EnvProfile      = "PAYCTL_PROFILE"
)

// Config holds all process configuration, built once at startup and passed
// by reference to whatever needs it.
type Config struct {
	// APIURL is the gateway base URL
	APIURL string

	// Profile names the local session slot; each profile has its own token
	Profile string

	// ConfigDir is where the config file and session slots live
	ConfigDir string

	// ClientID and ClientSecret are the OAuth2 client credentials.
	// They come from the environment or flags only and are never persisted.
	ClientID     string
	ClientSecret string
}

// fileConfig is the optional on-disk configuration. Credentials are
// deliberately not part of it.
type fileConfig struct {
	APIURL  string `yaml:"api_url"`
	Profile string `yaml:"profile"`
}

// Load assembles configuration from defaults, the optional config file,
// and the environment, in increasing precedence. Flag overrides are
// applied by the command layer on top of the returned struct.
func Load() (*Config, error) {
	dir := os.Getenv(EnvConfigDir)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigHome, "failed to determine home directory", err).
				WithSuggestion("Set PAYCTL_CONFIG_DIR to an explicit storage location")
		}
		dir = filepath.Join(home, ".payctl")
	}

	cfg := &Config{
		APIURL:       DefaultAPIURL,
		Profile:      "default",
		ConfigDir:    dir,
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
	}

	// A missing config file is the normal case; any other read failure
	// would silently drop the user's settings and must surface.
	path := filepath.Join(dir, "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("failed to read config file: %s", path), err).
			WithSuggestion("Check the permissions on the config file; payctl works without one")
	}
	if err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("failed to parse config file: %s", path), err).
				WithSuggestion("Fix or remove the config file; payctl works without one")
		}
		if fc.APIURL != "" {
			cfg.APIURL = fc.APIURL
		}
		if fc.Profile != "" {
			cfg.Profile = fc.Profile
		}
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(EnvProfile); v != "" {
		cfg.Profile = v
	}

	return cfg, nil
}

// SessionPath returns the session slot for the configured profile.
func (c *Config) SessionPath() string {
	return filepath.Join(c.ConfigDir, fmt.Sprintf("session-%s.json", c.Profile))
}
