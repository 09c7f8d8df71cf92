package tui

import (
	"fmt"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/config"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the setup form.
type SetupValues struct {
	Theme        string
	DefaultMonth int
}

// NewSetupForm builds the first-run form asking for a theme and the month
// the dashboard opens on. Answers are written into vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Bienvenido a salescast").
				Description("Configura el tema y el mes que se muestra al abrir el dashboard."),
			huh.NewSelect[string]().
				Title("Tema de color").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewSelect[int]().
				Title("Mes predeterminado").
				Options(MonthOptions()...).
				Value(&vals.DefaultMonth),
		),
	).WithTheme(huh.ThemeDracula())
}

// MonthOptions lists every forecastable month for huh selects.
func MonthOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, forecast.MaxPeriod)
	for m := forecast.MinPeriod; m <= forecast.MaxPeriod; m++ {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%2d  %s", m, cli.MonthName(m)), m))
	}
	return opts
}

// SaveSetup merges the answers into the config file, saves it and
// activates the chosen theme. An unreadable file is left untouched.
func SaveSetup(vals SetupValues) (config.Config, error) {
	cfg, err := config.LoadFile()
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", config.Path(), err)
	}
	if theme.Valid(vals.Theme) {
		cfg.Appearance.Theme = vals.Theme
		theme.SetActive(vals.Theme)
	}
	if forecast.ValidatePeriod(vals.DefaultMonth) == nil {
		cfg.General.DefaultMonth = vals.DefaultMonth
	}
	if err := config.Save(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
