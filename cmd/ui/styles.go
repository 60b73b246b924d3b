// Package ui holds the lipgloss styling shared by the qpp subcommands.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5F5FFF")).
			Padding(0, 2)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")).Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00BFFF")).
			Padding(0, 1)
)

// Title renders a banner heading.
func Title(s string) string { return titleStyle.Render(s) }

// Success renders confirmation text.
func Success(s string) string { return successStyle.Render(s) }

// Error renders failure text.
func Error(s string) string { return errorStyle.Render(s) }

// Accent renders highlighted values.
func Accent(s string) string { return accentStyle.Render(s) }

// Dim renders secondary text.
func Dim(s string) string { return dimStyle.Render(s) }

// Box wraps multi-line content in a rounded border.
func Box(s string) string { return boxStyle.Render(s) }
