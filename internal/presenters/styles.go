package presenters

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mosaiq/go-import-framework/pkg/ui"
)

var boxStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(ui.TokenColor("border.plain")).
	PaddingLeft(1).
	PaddingRight(4)

var errorBadgeStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	PaddingRight(1).
	Background(lipgloss.Color("1")).
	Foreground(lipgloss.Color("15"))

func renderBold(str string) string {
	return lipgloss.NewStyle().Bold(true).Render(str)
}

func renderInOutcomeColor(outcome string, str string) string {
	outcomeStyle := lipgloss.NewStyle().Foreground(
		ui.TokenColor("outcome." + outcome),
	)
	return outcomeStyle.Render(str)
}
