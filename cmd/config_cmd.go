// Package cmd implements the salescast CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Default month: %d (%s)\n", cfg.General.DefaultMonth, cli.MonthName(cfg.General.DefaultMonth))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Server]")
	fmt.Fprintf(out, "    Addr: %s\n", cfg.Server.Addr)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Environment overrides: SALESCAST_THEME, SALESCAST_DEFAULT_MONTH, SALESCAST_ADDR")
	fmt.Fprintln(out, "  Run `salescast setup` to reconfigure.")
	return nil
}
