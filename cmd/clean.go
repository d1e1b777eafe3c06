package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/dotide/internal/logger"
	"github.com/zhubert/dotide/internal/prefs"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove saved preferences, activity logs and debug logs",
	Long: `Clears the persisted font size, theme and activity log from the
preference store and removes the debug log file.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	return cleanWithReader(os.Stdin, cmd.OutOrStdout(), p.Store(), skipConfirm)
}

// cleanWithReader allows injecting a reader for testing
func cleanWithReader(input io.Reader, out io.Writer, store prefs.Store, yes bool) error {
	fmt.Fprintln(out, "This will clean:")
	fmt.Fprintln(out, "  - Saved font size and theme")
	fmt.Fprintln(out, "  - The activity log")
	fmt.Fprintf(out, "  - The debug log at %s\n", logger.DefaultLogPath)

	if !yes && !confirm(input, out, "Continue?") {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	var failed int
	for _, key := range []string{prefs.KeyFontSize, prefs.KeyTheme, prefs.KeyActivityLogs} {
		if err := store.Delete(key); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error removing %s: %v\n", key, err)
			failed++
		}
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	if failed == 0 {
		fmt.Fprintln(out, "Preferences cleared.")
	}
	if logsCleared > 0 {
		fmt.Fprintf(out, "Removed %d log file(s).\n", logsCleared)
	}
	return nil
}

// confirm prompts on out and reads a yes/no answer from input
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)
	reader := bufio.NewReader(input)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
