package components

import (
	"strings"

	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // rune index of the shortcut letter in Name, -1 if absent
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Dashboard", Key: 'd', KeyPos: 0},
	{Name: "Categorías", Key: 'c', KeyPos: 0},
	{Name: "Ajustes", Key: 'x', KeyPos: -1},
}

const tabGap = "  "

// tabLabel returns the unstyled text shown for a tab.
func tabLabel(tab Tab, active bool) string {
	switch {
	case active:
		return tab.Name
	case tab.KeyPos >= 0:
		rs := []rune(tab.Name)
		return string(rs[:tab.KeyPos]) + "[" + string(rs[tab.KeyPos]) + "]" + string(rs[tab.KeyPos+1:])
	default:
		return tab.Name + "[" + string(tab.Key) + "]"
	}
}

// TabVisualWidth returns the rendered width of tab i in the bar.
func TabVisualWidth(i, activeIdx int) int {
	return lipgloss.Width(tabLabel(Tabs[i], i == activeIdx))
}

// TabAtX returns the index of the tab under column x, or -1. The bar starts
// with a single space of left padding.
func TabAtX(x, activeIdx int) int {
	pos := 1
	for i := range Tabs {
		w := TabVisualWidth(i, activeIdx)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + len(tabGap)
	}
	return -1
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	base := lipgloss.NewStyle().Background(t.Background)
	activeStyle := base.Foreground(t.Accent).Background(t.SurfaceHover).Bold(true)
	inactiveStyle := base.Foreground(t.TextMuted)
	keyStyle := base.Foreground(t.Accent).Bold(true)
	dimKeyStyle := base.Foreground(t.TextDim)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		rs := []rune(tab.Name)
		if tab.KeyPos >= 0 && tab.KeyPos < len(rs) {
			parts = append(parts, inactiveStyle.Render(string(rs[:tab.KeyPos]))+
				dimKeyStyle.Render("[")+keyStyle.Render(string(rs[tab.KeyPos]))+dimKeyStyle.Render("]")+
				inactiveStyle.Render(string(rs[tab.KeyPos+1:])))
			continue
		}
		parts = append(parts, inactiveStyle.Render(tab.Name)+
			dimKeyStyle.Render("[")+keyStyle.Render(string(tab.Key))+dimKeyStyle.Render("]"))
	}

	bar := base.Render(" ") + strings.Join(parts, base.Render(tabGap))
	if gap := width - lipgloss.Width(bar); gap > 0 {
		bar += base.Render(strings.Repeat(" ", gap))
	}
	return bar
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
