package theme

import "github.com/charmbracelet/lipgloss"

// Border styles using Unicode box drawing characters
var (
	BorderStyleCard = lipgloss.RoundedBorder()

	BorderStyleSeparator = "│"
)
