package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/config"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/tui/components"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldMonth
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message
	saveErr error // non-nil if last save failed or the value was rejected
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 30
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg, err := config.LoadFile()
	if err != nil {
		a.settings.saved = false
		a.settings.saveErr = err
		return a, nil
	}
	a.settings.editing = true
	a.settings.saved = false
	a.settings.saveErr = nil

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldMonth:
		ti.Placeholder = "1-12"
		ti.SetValue(strconv.Itoa(cfg.General.DefaultMonth))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg, err := config.LoadFile()
	if err != nil {
		a.settings.saveErr = err
		return
	}
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		if !theme.Valid(val) {
			a.settings.saveErr = fmt.Errorf("tema desconocido %q", val)
			return
		}
		cfg.Appearance.Theme = val
		theme.SetActive(val)
	case settingsFieldMonth:
		m, err := strconv.Atoi(val)
		if err == nil {
			err = forecast.ValidatePeriod(m)
		}
		if err != nil {
			a.settings.saveErr = fmt.Errorf("mes inválido %q: %w", val, err)
			return
		}
		cfg.General.DefaultMonth = m
		a.setMonth(m)
	}

	a.settings.saveErr = config.Save(cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	effective := loadConfigOrDefault()
	cfg, fileErr := config.LoadFile()
	if fileErr != nil {
		cfg = effective
	}
	overrides := config.Overrides()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	fields := []struct{ label, value string }{
		{"Tema", cfg.Appearance.Theme},
		{"Mes predeterminado", fmt.Sprintf("%d (%s)", cfg.General.DefaultMonth, cli.MonthName(cfg.General.DefaultMonth))},
	}
	if v, ok := overrides[config.KeyTheme]; ok {
		fields[settingsFieldTheme].value += fmt.Sprintf("  [%s=%s activo]", v, effective.Appearance.Theme)
	}
	if v, ok := overrides[config.KeyDefaultMonth]; ok {
		fields[settingsFieldMonth].value += fmt.Sprintf("  [%s=%d activo]", v, effective.General.DefaultMonth)
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-20s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-20s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker + label + value)
			used := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if pad := components.CardInnerWidth(cw) - used; pad > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if fileErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Archivo de configuración ilegible: %s", fileErr)))
	}
	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("No se pudo guardar: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("¡Guardado!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] mover  [Enter] editar  [Esc] cancelar"))

	line := a.engine.Line()
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Modelo:          ") +
		valueStyle.Render(fmt.Sprintf("ventas = %.2f × mes + %.2f", line.Slope, line.Intercept)) + "\n")
	infoBody.WriteString(labelStyle.Render("Observaciones:   ") +
		valueStyle.Render(cli.FormatNumber(int64(len(a.engine.Observations())))) + "\n")
	infoBody.WriteString(labelStyle.Render("Archivo config:  ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Ajustes", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))
	return b.String()
}
