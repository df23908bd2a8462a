package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Opacity thresholds for terminal rendering
const (
	hiddenOpacity = 0.2
	faintOpacity  = 0.85
)

// CreateHeadingStyle picks the emphasis a scaled font size maps to in a terminal
func CreateHeadingStyle(fontSize int) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTextPrimary))
	switch {
	case fontSize >= FontH2:
		return style.Bold(true).Underline(true)
	case fontSize >= FontLG:
		return style.Bold(true)
	default:
		return style
	}
}

// CreateCardStyle creates a card panel of the given outer width
func CreateCardStyle(width, padding int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(max(width-2, 1)).
		Border(BorderStyleCard).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, padding).
		Foreground(lipgloss.Color(ColorTextPrimary))
}

// CreateLabelStyle creates the small caps label shown above card titles
func CreateLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimary)).
		Bold(true)
}

// CreateSecondaryTextStyle creates a consistent secondary text style
func CreateSecondaryTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorTextTertiary))
}

// CreateDateStyle creates the header date line style
func CreateDateStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorTextTertiary)).
		Bold(true)
}

// CreateActionStyle creates the pill used for GET/OPEN actions
func CreateActionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimary)).
		Background(lipgloss.Color(ColorSecondary)).
		Bold(true).
		Padding(0, 1)
}

// CreateTabStyle creates a tab bar entry style
func CreateTabStyle(active, available bool) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	switch {
	case active:
		return style.Foreground(lipgloss.Color(ColorPrimary)).Bold(true)
	case !available:
		return style.Foreground(lipgloss.Color(ColorDisabled))
	default:
		return style.Foreground(lipgloss.Color(ColorTextTertiary))
	}
}

// CreateTabBarStyle creates the bottom tab bar container
func CreateTabBarStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Align(lipgloss.Center)
}

// CreateFieldStyle creates a form field; focused fields get the accent border
func CreateFieldStyle(width int, focused bool) lipgloss.Style {
	border := ColorBorder
	if focused {
		border = ColorPrimary
	}
	return lipgloss.NewStyle().
		Width(max(width-2, 1)).
		Border(BorderStyleCard).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
}

// CreateButtonStyle creates the submit button
func CreateButtonStyle(focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorTextPrimary)).
		Padding(0, 3).
		Bold(true)
	if focused {
		return style.Background(lipgloss.Color(ColorPrimary))
	}
	return style.Background(lipgloss.Color(ColorSecondary))
}

// CreateCounterStyle creates the interest character counter
func CreateCounterStyle(full bool) lipgloss.Style {
	if full {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	}
	return CreateSecondaryTextStyle()
}

// Fade renders a block at the given opacity. Terminals cannot blend, so low opacity
// hides the text and partial opacity renders it faint. Hidden blocks keep their size.
func Fade(block string, opacity float64) string {
	switch {
	case opacity >= faintOpacity:
		return block
	case opacity < hiddenOpacity:
		return lipgloss.NewStyle().
			Width(lipgloss.Width(block)).
			Height(lipgloss.Height(block)).
			Render("")
	default:
		return lipgloss.NewStyle().Faint(true).Render(block)
	}
}
