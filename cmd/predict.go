package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/pipeline"
	"github.com/theirongolddev/salescast/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict [MONTH]",
	Short: "Predict sales for a month (1-12)",
	Long: "Predict sales for MONTH. Without an argument or --month, an interactive\n" +
		"picker opens when stdin is a terminal; otherwise the configured default is used.",
	Args: cobra.MaximumNArgs(1),
	RunE: runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	if err := checkFormat(cli.FormatTable, cli.FormatJSON, cli.FormatYAML); err != nil {
		return err
	}
	cfg := loadSettings()

	var month int
	switch {
	case len(args) == 1:
		m, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("month %q: %w", args[0], forecast.ErrPeriodOutOfRange)
		}
		month = m
	case flagMonth != 0:
		month = flagMonth
	case isatty.IsTerminal(os.Stdin.Fd()) && flagFormat == cli.FormatTable:
		m, err := pickMonth(cfg.General.DefaultMonth)
		if err != nil {
			return err
		}
		month = m
	default:
		month = cfg.General.DefaultMonth
	}

	f, err := pipeline.Forecast(forecast.Default(), month)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagFormat != cli.FormatTable {
		return cli.Encode(out, f, flagFormat)
	}

	fmt.Fprintf(out, "\n  Predicción para %s: %s  (%s vs %s)\n\n",
		f.MonthName,
		cli.FormatCurrency(f.Value, 2),
		cli.FormatDeltaPercent(f.ChangePct, f.HasChange),
		cli.MonthName(forecast.Default().Last().Period),
	)
	return nil
}

// pickMonth asks for a month with a huh select, starting at def.
func pickMonth(def int) (int, error) {
	month := def
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Mes a predecir").
			Options(tui.MonthOptions()...).
			Value(&month),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, errors.New("cancelled")
		}
		return 0, fmt.Errorf("month picker: %w", err)
	}
	return month, nil
}
