package cmd

import (
	"context"
	"os"
	"testing"

	"github.com/zhubert/dotide/internal/build"
	"github.com/zhubert/dotide/internal/config"
	"github.com/zhubert/dotide/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	_ = logger.Init(os.DevNull)
	code := m.Run()
	logger.Close()
	os.Exit(code)
}

func TestDebugFlagDefaultTrue(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "true" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "true")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want %q", flag.DefValue, "false")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestStoreAndDemoFlags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("store") == nil {
		t.Error("--store flag not found")
	}
	flag := rootCmd.Flags().Lookup("demo")
	if flag == nil {
		t.Fatal("--demo flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--demo default = %q, want %q", flag.DefValue, "false")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"stats": false, "clean": false, "demo": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestInitConfig_QuietOverridesDebug(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() {
		debugMode, quietMode = origDebug, origQuiet
		logger.SetDebug(false)
	}()

	debugMode = true
	quietMode = true
	initConfig()
	if logger.IsDebug() {
		t.Error("quiet mode should disable debug logging")
	}

	quietMode = false
	initConfig()
	if !logger.IsDebug() {
		t.Error("debug mode should enable debug logging")
	}
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer SetVersionInfo(origV, origC, origD)

	SetVersionInfo("1.2.0", "none", "unknown")
	if got := versionTemplate(); got != "dotide 1.2.0\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.0", "abc123", "2025-03-14")
	want := "dotide 1.2.0\n  commit: abc123\n  built:  2025-03-14\n"
	if got := versionTemplate(); got != want {
		t.Errorf("versionTemplate() = %q, want %q", got, want)
	}
}

func TestNewCompiler(t *testing.T) {
	for _, name := range config.APIKeyEnvVars {
		t.Setenv(name, "")
	}
	t.Chdir(t.TempDir())
	cfg := config.Default()

	c, notice, err := newCompiler(context.Background(), cfg, false)
	if err != nil {
		t.Fatalf("newCompiler() error = %v", err)
	}
	if _, ok := c.(*build.MockCompiler); !ok {
		t.Errorf("compiler = %T, want offline compiler without a key", c)
	}
	if notice != offlineNotice {
		t.Errorf("notice = %q, want %q", notice, offlineNotice)
	}

	t.Setenv("GEMINI_API_KEY", "test-key")
	c, notice, err = newCompiler(context.Background(), cfg, true)
	if err != nil {
		t.Fatalf("newCompiler(offline) error = %v", err)
	}
	if _, ok := c.(*build.MockCompiler); !ok {
		t.Errorf("compiler = %T, want offline compiler in demo mode", c)
	}
	if notice != "" {
		t.Errorf("demo mode notice = %q, want empty", notice)
	}
}

func TestOpenPrefs_RespectsStoreDir(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Dir = t.TempDir()

	p, err := openPrefs(cfg)
	if err != nil {
		t.Fatalf("openPrefs() error = %v", err)
	}
	defer p.Close()

	if err := p.SetFontSize(18); err != nil {
		t.Fatalf("SetFontSize() error = %v", err)
	}
	if got := p.FontSize(); got != 18 {
		t.Errorf("FontSize() = %d, want 18", got)
	}
}
