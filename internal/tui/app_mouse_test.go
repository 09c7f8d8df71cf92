package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/theirongolddev/salescast/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 1 // left padding

		for i := range components.Tabs {
			w := components.TabVisualWidth(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w + 2 // two-column gap
		}
	}
}

func TestClickOnTabBarSwitchesTab(t *testing.T) {
	a := newTestApp(t)

	// "[C]ategorías" starts at column 12 while Dashboard is active
	m, _ := a.Update(tea.MouseMsg{X: 14, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	a = m.(App)
	if a.activeTab != tabCategories {
		t.Fatalf("activeTab = %d, want %d", a.activeTab, tabCategories)
	}

	// clicks below the tab bar are ignored
	m, _ = a.Update(tea.MouseMsg{X: 2, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.(App).activeTab != tabCategories {
		t.Error("click outside the tab bar changed tabs")
	}
}
