package main

import "github.com/charmbracelet/lipgloss"

var (
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) // green
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")) // red
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))            // gray
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")) // blue
)
