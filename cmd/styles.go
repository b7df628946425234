package cmd

import "github.com/charmbracelet/lipgloss"

// Common styles used across commands
var (
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true) // Green
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))           // Red
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")) // Blue
	faintStyle     = lipgloss.NewStyle().Faint(true)
	boldStyle      = lipgloss.NewStyle().Bold(true)
)
