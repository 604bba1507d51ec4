package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ShortcutEntry pairs a trigger key with the display label for footer
// highlighting.
type ShortcutEntry struct {
	Key   string // trigger key to match against activeKey (empty = no highlight)
	Label string // display text
}

// RenderFooterBar renders a footer bar with shortcut labels. The shortcut
// matching activeKey is rendered with StyleHighlight; others are dim.
func RenderFooterBar(shortcuts []ShortcutEntry, activeKey string) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	parts := make([]string, len(shortcuts))
	for i, sc := range shortcuts {
		if activeKey != "" && sc.Key == activeKey {
			parts[i] = StyleHighlight.Render("[ " + sc.Label + " ]")
		} else {
			parts[i] = dimStyle.Render(sc.Label)
		}
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, dimStyle.Render(" • ")))
}
