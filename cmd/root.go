package cmd

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/dotide/internal/app"
	"github.com/zhubert/dotide/internal/build"
	"github.com/zhubert/dotide/internal/config"
	"github.com/zhubert/dotide/internal/logger"
	"github.com/zhubert/dotide/internal/prefs"
)

var (
	debugMode             bool
	quietMode             bool
	demoMode              bool
	storeBackend          string
	version, commit, date string
)

// offlineNotice is written to the output panel when no compiler credential is set.
const offlineNotice = "No GEMINI_API_KEY set: builds use the offline compiler."

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "dotide",
	Short: "Terminal IDE for small .NET projects",
	Long: `dotide is a terminal IDE for small C# projects created from templates.
Builds are sent to a remote generative model that plays the compiler; with
no API key configured, an offline compiler answers instead.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "Preference store backend: json or sqlite (overrides config)")
	rootCmd.Flags().BoolVar(&demoMode, "demo", false, "Use the offline compiler even when an API key is set")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("dotide %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("dotide %s\n", version)
}

// loadConfig reads config.yaml and applies the --store override.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if storeBackend != "" {
		cfg.SetStoreBackend(storeBackend)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// openPrefs opens the configured preference store.
func openPrefs(cfg *config.Config) (*prefs.Preferences, error) {
	dir, err := cfg.StoreDir()
	if err != nil {
		return nil, fmt.Errorf("error locating data dir: %w", err)
	}
	store, err := prefs.Open(cfg.Store.Backend, dir)
	if err != nil {
		return nil, fmt.Errorf("error opening preference store: %w", err)
	}
	return prefs.New(store), nil
}

// newCompiler picks the remote compiler when a credential is available.
// The returned notice is non-empty when the offline compiler was chosen
// for lack of a key.
func newCompiler(ctx context.Context, cfg *config.Config, offline bool) (build.Compiler, string, error) {
	if offline {
		return build.NewMockCompiler(), "", nil
	}
	key := cfg.APIKey()
	if key == "" {
		return build.NewMockCompiler(), offlineNotice, nil
	}
	c, err := build.NewGeminiCompiler(ctx, key, cfg.Build.Model, cfg.BuildTimeout())
	if err != nil {
		return nil, "", fmt.Errorf("error creating compiler: %w", err)
	}
	return c, "", nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.DefaultLogPath); err != nil {
		return err
	}
	defer logger.Close()
	log := logger.WithComponent("main")

	p, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	compiler, notice, err := newCompiler(cmd.Context(), cfg, demoMode)
	if err != nil {
		return err
	}
	log.Info("starting", "version", version, "store", cfg.Store.Backend,
		"compiler", compiler.Name(), "debug", logger.IsDebug())

	m := app.New(cfg, p, compiler, version)
	m.SetNotice(notice)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
