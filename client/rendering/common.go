package rendering

import (
	"github.com/charmbracelet/lipgloss"

	"movedex/client/global"
)

var (
	HighlightedColor = lipgloss.Color("33")
	FadedColor       = lipgloss.Color("240")
	WarningColor     = lipgloss.Color("214")

	ButtonStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Width(30).Padding(1, 3).Align(lipgloss.Center)
	HighlightedButtonStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Width(30).Padding(1, 3).Align(lipgloss.Center).Foreground(HighlightedColor)

	HighlightedItemStyle = lipgloss.NewStyle().PaddingLeft(4).Foreground(HighlightedColor)
	ItemStyle            = lipgloss.NewStyle().PaddingLeft(4)

	StabStyle    = lipgloss.NewStyle().Bold(true)
	FadedStyle   = lipgloss.NewStyle().Foreground(FadedColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
)

func Center(width int, height int, text string) string {
	return lipgloss.PlaceVertical(height, lipgloss.Center, lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
}

func GlobalCenter(text string) string {
	return Center(global.TERM_WIDTH, global.TERM_HEIGHT, text)
}

func CenterBlock(block string, text string) string {
	w, h := lipgloss.Size(block)
	return Center(w, h, text)
}
