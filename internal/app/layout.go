package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/buckleypaul/findport/internal/ui"
)

func renderStatusBar(bindings []key.Binding, badge string, width int) string {
	var parts []string
	if badge != "" {
		parts = append(parts, badge)
	}
	for _, kb := range bindings {
		if kb.Enabled() {
			parts = append(parts, ui.StatusKey(kb.Help().Key, kb.Help().Desc))
		}
	}

	line := strings.Join(parts, "  ")
	return ui.StatusBarStyle.Width(width).Render(line)
}

func renderLayout(body, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}
