// Package theme defines color themes for the salescast dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // page background
	Surface       lipgloss.Color // card background
	SurfaceHover  lipgloss.Color // active tab, selected month
	SurfaceBright lipgloss.Color // selected settings row
	Border        lipgloss.Color
	BorderBright  lipgloss.Color
	BorderAccent  lipgloss.Color // focused card
	TextDim       lipgloss.Color // hints, axis labels
	TextMuted     lipgloss.Color // metric labels
	TextPrimary   lipgloss.Color // metric values
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color
	AccentDim     lipgloss.Color
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	BlueBright    lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderBright:  lipgloss.Color("#575653"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	AccentDim:     lipgloss.Color("#1A3533"),
	Green:         lipgloss.Color("#879A39"),
	GreenBright:   lipgloss.Color("#A3B859"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	BlueBright:    lipgloss.Color("#6BA3D6"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#24837B"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	AccentDim:     lipgloss.Color("0"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	BlueBright:    lipgloss.Color("12"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// Bright is a light theme modeled on the web dashboard's card palette:
// gray page, white cards, emerald for forecasts, indigo for history.
var Bright = Theme{
	Name:          "bright",
	Background:    lipgloss.Color("#F0F2F6"),
	Surface:       lipgloss.Color("#FFFFFF"),
	SurfaceHover:  lipgloss.Color("#EEF2FF"),
	SurfaceBright: lipgloss.Color("#E5E7EB"),
	Border:        lipgloss.Color("#D1D5DB"),
	BorderBright:  lipgloss.Color("#9CA3AF"),
	BorderAccent:  lipgloss.Color("#3B82F6"),
	TextDim:       lipgloss.Color("#9CA3AF"),
	TextMuted:     lipgloss.Color("#4B5563"),
	TextPrimary:   lipgloss.Color("#1F2937"),
	Accent:        lipgloss.Color("#3B82F6"),
	AccentBright:  lipgloss.Color("#2563EB"),
	AccentDim:     lipgloss.Color("#EFF6FF"),
	Green:         lipgloss.Color("#10B981"),
	GreenBright:   lipgloss.Color("#059669"),
	Orange:        lipgloss.Color("#F59E0B"),
	Red:           lipgloss.Color("#EF4444"),
	Blue:          lipgloss.Color("#3B82F6"),
	BlueBright:    lipgloss.Color("#2563EB"),
	Yellow:        lipgloss.Color("#F59E0B"),
	Magenta:       lipgloss.Color("#6366F1"),
	Cyan:          lipgloss.Color("#0EA5E9"),
}

// All available themes.
var All = []Theme{FlexokiDark, Bright, Terminal}

// Names returns the names of all available themes in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Valid reports whether name is a known theme.
func Valid(name string) bool {
	for _, t := range All {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
