// Package config handles the XDG configuration directory, file paths and
// the remote endpoint settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "healthyou"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// SessionFile is the session database filename.
	SessionFile = "session.db"

	// ConfigFile is the optional endpoint settings filename.
	ConfigFile = "config.yaml"
)

// Default endpoint URLs.
const (
	DefaultRemindersURL = "https://685d194e769de2bf085f55ed.mockapi.io/Reminders"
	DefaultAccountsURL  = "https://685d194e769de2bf085f55ed.mockapi.io/Auth"
	DefaultPostsURL     = "https://685d194e769de2bf085f55ed.mockapi.io/Posts"
	DefaultProfilesURL  = "https://6861efad96f0cc4e34b7d2dc.mockapi.io/profile"
	DefaultSearchURL    = "https://id.wikipedia.org/w/api.php"
)

// Environment variables overriding the endpoints.
const (
	EnvReminders = "HEALTHYOU_REMINDERS_URL"
	EnvProfiles  = "HEALTHYOU_PROFILES_URL"
	EnvPosts     = "HEALTHYOU_POSTS_URL"
	EnvAccounts  = "HEALTHYOU_ACCOUNTS_URL"
	EnvSearch    = "HEALTHYOU_SEARCH_URL"
)

// Endpoints are the base URLs of the remote collections and the search API.
type Endpoints struct {
	Reminders string `yaml:"reminders"`
	Profiles  string `yaml:"profiles"`
	Posts     string `yaml:"posts"`
	Accounts  string `yaml:"accounts"`
	Search    string `yaml:"search"`
}

// DefaultEndpoints returns the built-in endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Reminders: DefaultRemindersURL,
		Profiles:  DefaultProfilesURL,
		Posts:     DefaultPostsURL,
		Accounts:  DefaultAccountsURL,
		Search:    DefaultSearchURL,
	}
}

type fileConfig struct {
	Endpoints Endpoints `yaml:"endpoints"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Endpoints are the resolved remote URLs.
	Endpoints Endpoints

	// Logger is set by the dispatcher; never nil after dispatch.
	Logger *zap.Logger
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/healthyou or
// $HOME/.config/healthyou. Endpoints start at their defaults.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, Endpoints: DefaultEndpoints(), Logger: zap.NewNop()}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Load resolves the endpoints: defaults, then config.yaml in Dir, then
// environment variables. A .env file in the working directory or in Dir is
// loaded first without overriding variables already set.
func (c *Config) Load() error {
	for _, f := range []string{".env", filepath.Join(c.Dir, ".env")} {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	data, err := os.ReadFile(c.ConfigPath())
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("read %s: %w", ConfigFile, err)
	default:
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("parse %s: %w", ConfigFile, err)
		}
		c.Endpoints.merge(fc.Endpoints)
	}

	c.Endpoints.merge(Endpoints{
		Reminders: os.Getenv(EnvReminders),
		Profiles:  os.Getenv(EnvProfiles),
		Posts:     os.Getenv(EnvPosts),
		Accounts:  os.Getenv(EnvAccounts),
		Search:    os.Getenv(EnvSearch),
	})
	return nil
}

// merge overwrites every field that is set in o.
func (e *Endpoints) merge(o Endpoints) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&e.Reminders, o.Reminders)
	set(&e.Profiles, o.Profiles)
	set(&e.Posts, o.Posts)
	set(&e.Accounts, o.Accounts)
	set(&e.Search, o.Search)
}

// ConfigPath returns the path to the endpoint settings file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// SessionPath returns the path to the session database.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}
