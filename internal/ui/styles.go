package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#6C5CE7")
	colorMuted   = lipgloss.Color("#636E72")
	colorError   = lipgloss.Color("#D63031")
	colorSuccess = lipgloss.Color("#00B894")
	colorTop     = lipgloss.Color("#FFEAA7")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	statusStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	// the head of the queue is the next task to be completed
	topStyle = lipgloss.NewStyle().Foreground(colorTop)
)
