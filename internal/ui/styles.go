package ui

import "github.com/charmbracelet/lipgloss"

// Monochrome, classic-Mac look: plain text, reverse video for the
// chrome and the selection, double borders on dialogs.
var (
	menuBarStyle = lipgloss.NewStyle().
			Reverse(true).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Reverse(true).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Faint(true)

	selectedItemStyle = lipgloss.NewStyle().
				Reverse(true)

	itemMetaStyle = lipgloss.NewStyle().
			Bold(true)

	itemBodyStyle = lipgloss.NewStyle().
			Faint(true)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Align(lipgloss.Center)

	calcDisplayStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				Align(lipgloss.Right).
				Width(13)

	helpStyle = lipgloss.NewStyle().
			Faint(true)
)
