package ui

import "github.com/charmbracelet/lipgloss"

var tokenMap map[string]lipgloss.TerminalColor

func init() {
	tokenMap = map[string]lipgloss.TerminalColor{
		"outcome.success": lipgloss.AdaptiveColor{Light: "2", Dark: "10"},
		"outcome.failure": lipgloss.AdaptiveColor{Light: "9", Dark: "1"},
		"outcome.skipped": lipgloss.AdaptiveColor{Light: "9", Dark: "3"},
		"text.plain":      lipgloss.NoColor{},
		"border.plain":    lipgloss.NoColor{},
	}
}

func TokenColor(name string) lipgloss.TerminalColor {
	val, ok := tokenMap[name]

	if !ok {
		return lipgloss.NoColor{}
	}

	return val
}
