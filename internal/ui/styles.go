package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorText      = lipgloss.Color("252") // White/Gray

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	StyleSubtle = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleError  = lipgloss.NewStyle().Foreground(ColorError)
	StyleLabel  = lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	StyleToast = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSuccess).
			Padding(0, 1)

	// Modal box around the add/update form
	StyleModal = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	StyleRadioActive = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleRadio       = lipgloss.NewStyle().Foreground(ColorText)
)
