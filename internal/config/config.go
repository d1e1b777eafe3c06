package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/zhubert/dotide/internal/activity"
)

// Store backends for the preference store.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// DefaultModel is the generative model asked to play compiler.
const DefaultModel = "gemini-2.5-flash"

// Config holds the application configuration
type Config struct {
	Theme    string         `yaml:"theme,omitempty"` // Theme used until the user picks one
	Store    StoreConfig    `yaml:"store"`
	Build    BuildConfig    `yaml:"build"`
	Activity ActivityConfig `yaml:"activity"`

	mu       sync.RWMutex
	filePath string
}

// StoreConfig selects where preferences and activity logs are persisted.
type StoreConfig struct {
	Backend string `yaml:"backend"`       // "json" or "sqlite"
	Dir     string `yaml:"dir,omitempty"` // Defaults to ~/.dotide
}

// BuildConfig configures the remote compiler.
type BuildConfig struct {
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Notify         bool   `yaml:"notify,omitempty"` // Desktop notification when a build finishes
}

// ActivityConfig holds the activity sampling heuristics. All values are seconds.
type ActivityConfig struct {
	TickSeconds     int `yaml:"tick_seconds"`
	IdleSeconds     int `yaml:"idle_seconds"`
	EditingSeconds  int `yaml:"editing_seconds"`
	BuildingSeconds int `yaml:"building_seconds"`
	RunningSeconds  int `yaml:"running_seconds"`
}

// Default returns a config with every field at its default.
func Default() *Config {
	return &Config{
		Store: StoreConfig{Backend: StoreJSON},
		Build: BuildConfig{Model: DefaultModel, TimeoutSeconds: 60},
		Activity: ActivityConfig{
			TickSeconds:     5,
			IdleSeconds:     120,
			EditingSeconds:  5,
			BuildingSeconds: 2,
			RunningSeconds:  5,
		},
	}
}

// configDir returns the directory holding config.yaml
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dotide"), nil
}

// DataDir returns the default directory for persisted preferences.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dotide"), nil
}

// Load reads the config from the user config dir, or returns defaults if it doesn't exist.
func Load() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(filepath.Join(dir, "config.yaml"))
}

// LoadFrom reads the config at path. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillDefaults replaces zero values left by a partial config file.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Store.Backend == "" {
		c.Store.Backend = d.Store.Backend
	}
	if c.Build.Model == "" {
		c.Build.Model = d.Build.Model
	}
	if c.Build.TimeoutSeconds == 0 {
		c.Build.TimeoutSeconds = d.Build.TimeoutSeconds
	}
	a := &c.Activity
	if a.TickSeconds == 0 {
		a.TickSeconds = d.Activity.TickSeconds
	}
	if a.IdleSeconds == 0 {
		a.IdleSeconds = d.Activity.IdleSeconds
	}
	if a.EditingSeconds == 0 {
		a.EditingSeconds = d.Activity.EditingSeconds
	}
	if a.BuildingSeconds == 0 {
		a.BuildingSeconds = d.Activity.BuildingSeconds
	}
	if a.RunningSeconds == 0 {
		a.RunningSeconds = d.Activity.RunningSeconds
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.Store.Backend {
	case StoreJSON, StoreSQLite:
	default:
		return fmt.Errorf("unknown store backend %q (want %q or %q)", c.Store.Backend, StoreJSON, StoreSQLite)
	}
	if c.Build.TimeoutSeconds < 0 {
		return fmt.Errorf("build timeout must not be negative")
	}
	a := c.Activity
	for name, v := range map[string]int{
		"tick_seconds":     a.TickSeconds,
		"idle_seconds":     a.IdleSeconds,
		"editing_seconds":  a.EditingSeconds,
		"building_seconds": a.BuildingSeconds,
		"running_seconds":  a.RunningSeconds,
	} {
		if v < 0 {
			return fmt.Errorf("activity %s must not be negative", name)
		}
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return fmt.Errorf("config has no file path")
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.filePath, data, 0o644)
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.filePath
}

// GetTheme returns the configured default theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetStoreBackend overrides the store backend (used by the --store flag).
func (c *Config) SetStoreBackend(backend string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Store.Backend = backend
}

// StoreDir returns the directory for the preference store.
func (c *Config) StoreDir() (string, error) {
	c.mu.RLock()
	dir := c.Store.Dir
	c.mu.RUnlock()
	if dir != "" {
		return dir, nil
	}
	return DataDir()
}

// BuildTimeout returns the per-build deadline.
func (c *Config) BuildTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.Build.TimeoutSeconds) * time.Second
}

// ActivityPolicy returns the sampling heuristics for the activity recorder.
func (c *Config) ActivityPolicy() activity.Policy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a := c.Activity
	return activity.Policy{
		TickPeriod:      time.Duration(a.TickSeconds) * time.Second,
		IdleThreshold:   time.Duration(a.IdleSeconds) * time.Second,
		EditingSeconds:  a.EditingSeconds,
		BuildingSeconds: a.BuildingSeconds,
		RunningSeconds:  a.RunningSeconds,
	}
}

// NotificationsEnabled reports whether build completion should raise a desktop notification.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Build.Notify
}

// APIKeyEnvVars are checked in order for the compiler credential.
var APIKeyEnvVars = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}

// APIKey returns the compiler credential. Values already in the environment win
// over .env files; .env in the working directory is read first, then the one
// next to config.yaml.
func (c *Config) APIKey() string {
	files := []string{".env"}
	if c.filePath != "" {
		files = append(files, filepath.Join(filepath.Dir(c.filePath), ".env"))
	}
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			// godotenv.Load never overrides variables that are already set.
			_ = godotenv.Load(f)
		}
	}
	for _, name := range APIKeyEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
