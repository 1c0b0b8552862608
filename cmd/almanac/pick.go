package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/almanac/pkg/monthpicker"
)

func pickCmd(ctx context.Context, args []string) error {
	var g globalOptions
	fs := newFlagSet("pick", "Choose a month interactively. The choice is printed to stdout as YYYY-MM.", &g)
	value := fs.String("value", "", "initially selected month (YYYY-MM)")
	placeholder := fs.String("placeholder", "", "text shown when nothing is selected (overrides config)")
	_ = fs.Parse(args)

	cfg, log, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}

	ph := cfg.Picker.Placeholder
	if *placeholder != "" {
		ph = *placeholder
	}

	var chosen string
	picker := monthpicker.New(
		func(v string) {
			chosen = v
			log.Debug("month picked", "value", v)
		},
		monthpicker.WithValue(*value),
		monthpicker.WithPlaceholder(ph),
		monthpicker.WithWidth(cfg.Picker.Width),
		monthpicker.WithLogger(log),
	)
	picker.Open()

	p := tea.NewProgram(newPickModel(picker), tea.WithContext(ctx), tea.WithOutput(os.Stderr))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("pick: %w", err)
	}

	return printPicked(os.Stdout, chosen)
}

func printPicked(w io.Writer, value string) error {
	if value == "" {
		return fmt.Errorf("pick: no month selected")
	}
	_, err := fmt.Fprintln(w, value)
	return err
}

// pickModel hosts the month picker as a full program.
type pickModel struct {
	picker   monthpicker.Model
	quitting bool
}

func newPickModel(picker monthpicker.Model) pickModel {
	return pickModel{picker: picker}
}

func (m pickModel) Init() tea.Cmd { return nil }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			if !m.picker.IsOpen() {
				m.quitting = true
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		if m.picker.Width == 0 {
			m.picker.Width = min(msg.Width, 40)
		}
		return m, nil
	case monthpicker.SelectedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	return m, cmd
}

func (m pickModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Pick a month"))
	sb.WriteString("\n\n")
	sb.WriteString(m.picker.View())
	sb.WriteString("\n")
	if !m.picker.IsOpen() {
		sb.WriteString(dimStyle.Render("enter open · q quit"))
		sb.WriteString("\n")
	}
	return sb.String()
}
