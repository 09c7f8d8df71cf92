package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/salescast/internal/config"
	"github.com/theirongolddev/salescast/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose a theme and default month",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	loadSettings()
	cfg, err := config.LoadFile()
	if err != nil {
		return fmt.Errorf("fix or remove %s first: %w", config.Path(), err)
	}
	vals := tui.SetupValues{Theme: cfg.Appearance.Theme, DefaultMonth: cfg.General.DefaultMonth}

	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	if _, err := tui.SaveSetup(vals); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `salescast setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
