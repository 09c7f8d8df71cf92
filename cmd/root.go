package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/config"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagMonth  int
	flagFormat string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "salescast",
	Short: "Sales forecast dashboard",
	Long: "Fit a trend line to monthly sales, predict any month of the year and\n" +
		"show category breakdowns in the terminal, as text exports or over HTTP.",
	SilenceUsage: true,
	RunE:         runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagMonth, "month", "m", 0, "Target month 1-12 (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", cli.FormatTable,
		"Output format: "+strings.Join(cli.Formats, ", "))
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings")
}

// warnf prints a warning to stderr unless --quiet is set.
func warnf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "  "+format+"\n", args...)
}

// loadSettings loads the config, falling back to defaults with a warning
// so a broken file never blocks read-only commands.
func loadSettings() config.Config {
	cfg, err := config.Load()
	if err != nil {
		warnf("Config unusable (%v), using defaults", err)
		return config.DefaultConfig()
	}
	theme.SetActive(cfg.Appearance.Theme)
	return cfg
}

// resolveMonth returns --month when given, else the configured default.
func resolveMonth(cfg config.Config) (int, error) {
	if flagMonth == 0 {
		return cfg.General.DefaultMonth, nil
	}
	if err := forecast.ValidatePeriod(flagMonth); err != nil {
		return 0, fmt.Errorf("--month: %w", err)
	}
	return flagMonth, nil
}

func checkFormat(allowed ...string) error {
	if slices.Contains(allowed, flagFormat) {
		return nil
	}
	return fmt.Errorf("--format %q: want one of %s", flagFormat, strings.Join(allowed, ", "))
}
