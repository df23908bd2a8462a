package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// CreateDialogStyle creates the floating help dialog
func CreateDialogStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1, 2)
}

// CreatePromptStyle creates a style for dialog titles
func CreatePromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorTextPrimary)).
		Bold(true).
		MarginBottom(1)
}
