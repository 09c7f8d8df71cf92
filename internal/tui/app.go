// Package tui provides the interactive Bubble Tea dashboard for salescast.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/config"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/pipeline"
	"github.com/theirongolddev/salescast/internal/tui/components"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabDashboard = iota
	tabCategories
	tabSettings
)

// App is the root Bubble Tea model.
type App struct {
	engine *forecast.Engine
	dash   model.Dashboard
	month  int
	err    error // last recompute failure, shown in place of the dashboard

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues // shared with the form across App copies
	needSetup bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 160
	minContentHeight = 5
)

// loadConfigOrDefault loads config, returning defaults on error.
// The TUI always starts even if the config file is broken.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model showing month. Out-of-range months
// fall back to the configured default.
func NewApp(engine *forecast.Engine, month int) App {
	cfg := loadConfigOrDefault()
	if forecast.ValidatePeriod(month) != nil {
		month = cfg.General.DefaultMonth
	}

	a := App{
		engine:    engine,
		month:     month,
		needSetup: !config.Exists(),
		setupVals: &SetupValues{Theme: cfg.Appearance.Theme, DefaultMonth: cfg.General.DefaultMonth},
	}
	a.recompute()
	if a.needSetup {
		a.setupForm = NewSetupForm(a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// recompute rebuilds every dashboard region for the current month.
func (a *App) recompute() {
	a.dash, a.err = pipeline.BuildDashboard(a.engine, a.month)
}

// setMonth clamps m to the valid range and refreshes only what depends on
// the selected month.
func (a *App) setMonth(m int) {
	m = min(max(m, forecast.MinPeriod), forecast.MaxPeriod)
	if m == a.month && a.err == nil {
		return
	}
	a.month = m
	if a.err != nil {
		a.recompute()
		return
	}
	selected, err := pipeline.SelectMonth(a.engine, m)
	if err != nil {
		a.err = err
		return
	}
	a.dash.Selected = selected
	a.dash.TargetMonth = m
	a.dash.Chart = pipeline.TrendChart(a.engine, m)
}

// monthForKey maps the number row to months: 1-9, then 0, - and = for
// October through December.
func monthForKey(key string) (int, bool) {
	switch key {
	case "0":
		return 10, true
	case "-":
		return 11, true
	case "=":
		return 12, true
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '0'), true
	}
	return 0, false
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.activeTab == tabSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		if m, ok := monthForKey(key); ok {
			a.setMonth(m)
			return a, nil
		}

		switch key {
		case "left", "h":
			a.setMonth(a.month - 1)
		case "right", "l":
			a.setMonth(a.month + 1)
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		default:
			if r := []rune(key); len(r) == 1 {
				if idx := components.TabIdxByKey(r[0]); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if _, err := SaveSetup(*a.setupVals); err != nil {
			a.settings.saveErr = err
		}
		a.needSetup = false
		a.setupForm = nil
		a.setMonth(a.setupVals.DefaultMonth)
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal demasiado estrecha (%d columnas)\n\n  salescast necesita al menos %d columnas.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Mes", []struct{ key, desc string }{
			{"← → h l", "Mes anterior / siguiente"},
			{"1-9 0 - =", "Saltar a Enero … Diciembre"},
		}},
		{"Navegación", []struct{ key, desc string }{
			{"d c x", "Ir a pestaña"},
			{"Tab", "Pestaña siguiente"},
			{"j k Enter", "Ajustes: mover / editar"},
		}},
		{"General", []struct{ key, desc string }{
			{"?", "Mostrar / ocultar ayuda"},
			{"q", "Salir"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Atajos de teclado"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, bind := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Pulsa cualquier tecla para cerrar"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	titleRow := titleStyle.Render(" ◈ "+pipeline.DashboardTitle) +
		pillStyle.Render("  │ ") + accentStyle.Render(cli.MonthName(a.month)) + pillStyle.Render(" ")
	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(titleRow)

	statusBar := components.RenderStatusBar(w, cli.MonthName(a.month), a.month)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch {
	case a.err != nil:
		content = components.AccentCard("Error", a.err.Error(), t.Red, cw)
	case a.activeTab == tabDashboard:
		content = a.renderDashboardTab(cw)
	case a.activeTab == tabCategories:
		content = a.renderCategoriesTab(cw)
	case a.activeTab == tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color
// so gaps between cards are painted.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	return components.TabAtX(x, a.activeTab)
}
