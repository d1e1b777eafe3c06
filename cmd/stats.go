package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/dotide/internal/activity"
	"github.com/zhubert/dotide/internal/config"
	"github.com/zhubert/dotide/internal/prefs"
	"github.com/zhubert/dotide/internal/ui"
)

var (
	statsReset bool
	statsWidth int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the activity dashboard",
	Long: `Prints the same dashboard the TUI shows on its statistics screen:
totals per activity kind, daily activity, time per project and the most
recent entries.

With --reset the persisted activity log is cleared instead.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsReset, "reset", false, "Clear the activity log")
	statsCmd.Flags().IntVarP(&statsWidth, "width", "w", 80, "Dashboard width in columns")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	return printStats(cmd.OutOrStdout(), cfg, p, statsReset, statsWidth)
}

// printStats renders the dashboard for p's log, or clears it when reset is set.
func printStats(w io.Writer, cfg *config.Config, p *prefs.Preferences, reset bool, width int) error {
	recorder := activity.NewRecorder(cfg.ActivityPolicy(), p)
	if reset {
		n := len(recorder.Entries())
		if err := recorder.Reset(); err != nil {
			return fmt.Errorf("error clearing activity log: %w", err)
		}
		fmt.Fprintf(w, "Removed %d activity entr%s.\n", n, plural(n, "y", "ies"))
		return nil
	}

	logs := recorder.Entries()
	if len(logs) == 0 {
		fmt.Fprintln(w, "No activity recorded yet.")
		return nil
	}
	fmt.Fprintln(w, ui.RenderDashboard(logs, width))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
