package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles of the non-game screens.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	Text  lipgloss.Style
	Help  lipgloss.Style
	Error lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Text:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}
