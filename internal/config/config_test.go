package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Store.Backend != StoreJSON {
		t.Errorf("backend = %q, want %q", cfg.Store.Backend, StoreJSON)
	}
	if cfg.Build.Model != DefaultModel {
		t.Errorf("model = %q, want %q", cfg.Build.Model, DefaultModel)
	}
	if cfg.Activity.TickSeconds != 5 || cfg.Activity.IdleSeconds != 120 {
		t.Errorf("activity defaults wrong: %+v", cfg.Activity)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "theme: dracula\nstore:\n  backend: sqlite\nactivity:\n  idle_seconds: 300\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.GetTheme() != "dracula" {
		t.Errorf("theme = %q", cfg.GetTheme())
	}
	if cfg.Store.Backend != StoreSQLite {
		t.Errorf("backend = %q", cfg.Store.Backend)
	}
	if cfg.Activity.IdleSeconds != 300 {
		t.Errorf("idle = %d, want 300", cfg.Activity.IdleSeconds)
	}
	if cfg.Activity.TickSeconds != 5 {
		t.Errorf("tick should keep default, got %d", cfg.Activity.TickSeconds)
	}
	if cfg.BuildTimeout() != 60*time.Second {
		t.Errorf("timeout = %v", cfg.BuildTimeout())
	}
}

func TestLoadFrom_InvalidBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store:\n  backend: redis\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFrom(path)
	if err == nil || !strings.Contains(err.Error(), "unknown store backend") {
		t.Errorf("expected backend validation error, got %v", err)
	}
}

func TestLoadFrom_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate_NegativeActivity(t *testing.T) {
	cfg := Default()
	cfg.Activity.EditingSeconds = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative durations should fail validation")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Theme = "monokai"
	cfg.Build.Notify = true
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.GetTheme() != "monokai" || !loaded.NotificationsEnabled() {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestStoreDir(t *testing.T) {
	cfg := Default()
	cfg.Store.Dir = "/var/lib/dotide"
	dir, err := cfg.StoreDir()
	if err != nil || dir != "/var/lib/dotide" {
		t.Errorf("StoreDir() = %q, %v", dir, err)
	}
}

func TestAPIKey_FromDotEnv(t *testing.T) {
	for _, name := range APIKeyEnvVars {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GEMINI_API_KEY=from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.APIKey(); got != "from-dotenv" {
		t.Errorf("APIKey() = %q", got)
	}
}

func TestAPIKey_EnvironmentWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GEMINI_API_KEY=from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ := LoadFrom(filepath.Join(dir, "config.yaml"))
	if got := cfg.APIKey(); got != "from-env" {
		t.Errorf("APIKey() = %q, want env value", got)
	}
}

func TestActivityPolicy(t *testing.T) {
	cfg := Default()
	cfg.Activity.IdleSeconds = 300

	p := cfg.ActivityPolicy()
	if p.TickPeriod != 5*time.Second {
		t.Errorf("tick = %v, want 5s", p.TickPeriod)
	}
	if p.IdleThreshold != 5*time.Minute {
		t.Errorf("idle = %v, want 5m", p.IdleThreshold)
	}
	if p.EditingSeconds != 5 || p.BuildingSeconds != 2 || p.RunningSeconds != 5 {
		t.Errorf("unexpected credits %+v", p)
	}
}
