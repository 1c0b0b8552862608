package monthpicker

import "github.com/charmbracelet/lipgloss"

// Styles controls the look of the picker.
type Styles struct {
	Trigger         lipgloss.Style
	TriggerOpen     lipgloss.Style
	TriggerError    lipgloss.Style
	TriggerDisabled lipgloss.Style
	Placeholder     lipgloss.Style
	Popover         lipgloss.Style
	Year            lipgloss.Style
	Stepper         lipgloss.Style
	StepperDisabled lipgloss.Style
	Month           lipgloss.Style
	MonthSelected   lipgloss.Style
	MonthCursor     lipgloss.Style
}

// DefaultStyles returns the default ANSI palette styles.
func DefaultStyles() Styles {
	return Styles{
		Trigger:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		TriggerOpen:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("4")).Padding(0, 1),
		TriggerError:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("1")).Padding(0, 1),
		TriggerDisabled: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Foreground(lipgloss.Color("8")).Faint(true).Padding(0, 1),
		Placeholder:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")), // muted
		Popover:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("4")).Padding(0, 1),
		Year:            lipgloss.NewStyle().Bold(true),
		Stepper:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		StepperDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
		Month:           lipgloss.NewStyle(),
		MonthSelected:   lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color("4")),
		MonthCursor:     lipgloss.NewStyle().Underline(true),
	}
}
