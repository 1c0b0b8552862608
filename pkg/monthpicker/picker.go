package monthpicker

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	// DefaultPlaceholder is shown on the trigger when nothing is selected.
	DefaultPlaceholder = "Select month"

	// MinYear and MaxYear bound the visible year so every pick formats as a
	// four-digit "YYYY-MM" value.
	MinYear = 0
	MaxYear = 9999

	gridColumns = 3
	cellWidth   = 5
	calendarIco = "📅"
)

// SelectedMsg is emitted after the user picks a month.
type SelectedMsg struct {
	Value string
}

type options struct {
	value       string
	disabled    bool
	errored     bool
	placeholder string
	width       int
	now         func() time.Time
	log         *slog.Logger
}

// Option configures a Model at construction time.
type Option func(*options)

// WithValue sets the initial canonical "YYYY-MM" value.
func WithValue(v string) Option { return func(o *options) { o.value = v } }

// WithDisabled starts the picker disabled.
func WithDisabled(d bool) Option { return func(o *options) { o.disabled = d } }

// WithError starts the picker in the error visual state.
func WithError(e bool) Option { return func(o *options) { o.errored = e } }

// WithPlaceholder sets the text shown when nothing is selected.
func WithPlaceholder(p string) Option { return func(o *options) { o.placeholder = p } }

// WithWidth sets the minimum trigger width in cells.
func WithWidth(w int) Option { return func(o *options) { o.width = w } }

// WithClock overrides the clock used to pick the initial visible year.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

// WithLogger sets the logger used to report discarded values.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.log = l } }

// Model is a month picker: a trigger showing the current selection and a
// popover with a year stepper and a 3x4 month grid.
//
// The selection and the visible year are independent. Stepping the year never
// changes the selection, and a month is drawn as selected only when the
// visible year matches the selected year.
type Model struct {
	Disabled    bool
	Error       bool
	Placeholder string
	Width       int
	KeyMap      KeyMap
	Styles      Styles

	onChange    func(string)
	selected    Month
	hasSelected bool
	displayYear int
	open        bool
	cursor      int
	help        help.Model
	log         *slog.Logger
}

// New creates a Model. onChange receives the canonical value every time a
// month is picked and must not be nil.
func New(onChange func(string), opts ...Option) Model {
	if onChange == nil {
		panic("monthpicker: onChange must not be nil")
	}

	o := options{
		placeholder: DefaultPlaceholder,
		now:         time.Now,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	m := Model{
		Disabled:    o.disabled,
		Error:       o.errored,
		Placeholder: o.placeholder,
		Width:       o.width,
		KeyMap:      DefaultKeyMap(),
		Styles:      DefaultStyles(),
		onChange:    onChange,
		help:        help.New(),
		log:         o.log,
	}

	m.SetValue(o.value)

	// The visible year is derived once; later SetValue calls leave it alone.
	if m.hasSelected {
		m.displayYear = m.selected.Year
	} else {
		m.displayYear = clampYear(o.now().Year())
	}

	return m
}

// SetValue replaces the selection with a canonical "YYYY-MM" value. Empty or
// malformed values clear the selection.
func (m *Model) SetValue(v string) {
	if v == "" {
		m.hasSelected = false
		m.selected = Month{}
		return
	}

	month, err := Parse(v)
	if err != nil {
		m.log.Debug("month picker value discarded", "value", v, "error", err)
		m.hasSelected = false
		m.selected = Month{}
		return
	}

	m.selected = month
	m.hasSelected = true
}

// Value returns the canonical selection, or "" when nothing is selected.
func (m Model) Value() string {
	if !m.hasSelected {
		return ""
	}
	return m.selected.String()
}

// Selected returns the current selection. The bool is false when nothing is
// selected.
func (m Model) Selected() (Month, bool) {
	return m.selected, m.hasSelected
}

// DisplayYear returns the year shown in the popover.
func (m Model) DisplayYear() int { return m.displayYear }

// IsOpen reports whether the popover is visible.
func (m Model) IsOpen() bool { return m.open }

// Cursor returns the grid index of the highlighted month.
func (m Model) Cursor() int { return m.cursor }

// Open shows the popover. It is a no-op while disabled.
func (m *Model) Open() {
	if m.Disabled {
		return
	}
	m.open = true
	if m.hasSelected {
		m.cursor = m.selected.Index
	}
}

// Close hides the popover.
func (m *Model) Close() { m.open = false }

// Toggle flips the popover state.
func (m *Model) Toggle() {
	if m.open {
		m.Close()
		return
	}
	m.Open()
}

// StepYear moves the visible year by delta, clamped to [MinYear, MaxYear].
func (m *Model) StepYear(delta int) {
	m.displayYear = clampYear(m.displayYear + delta)
}

func clampYear(y int) int {
	return min(max(y, MinYear), MaxYear)
}

// Select picks month index (0-11) in the visible year, reports it through
// onChange and closes the popover. The returned command emits a SelectedMsg.
// Out-of-range indices and disabled pickers are ignored.
func (m *Model) Select(index int) tea.Cmd {
	if m.Disabled || index < 0 || index >= len(MonthNames) {
		return nil
	}

	m.selected = Month{Year: m.displayYear, Index: index}
	m.hasSelected = true
	m.cursor = index
	m.open = false

	value := m.selected.String()
	m.onChange(value)

	return func() tea.Msg { return SelectedMsg{Value: value} }
}

// IsSelected reports whether month index is drawn as selected: the selection
// must exist and match both the index and the visible year.
func (m Model) IsSelected(index int) bool {
	return m.hasSelected && m.selected.Index == index && m.selected.Year == m.displayYear
}

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Disabled {
		return m, nil
	}

	if !m.open {
		if key.Matches(keyMsg, m.KeyMap.Open) {
			m.Open()
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Close):
		m.Close()
	case key.Matches(keyMsg, m.KeyMap.Select):
		return m, m.Select(m.cursor)
	case key.Matches(keyMsg, m.KeyMap.PrevYear):
		m.StepYear(-1)
	case key.Matches(keyMsg, m.KeyMap.NextYear):
		m.StepYear(1)
	case key.Matches(keyMsg, m.KeyMap.Left):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.KeyMap.Right):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.KeyMap.Up):
		m.moveCursor(-gridColumns)
	case key.Matches(keyMsg, m.KeyMap.Down):
		m.moveCursor(gridColumns)
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(MonthNames) {
		return
	}
	m.cursor = next
}

// View renders the trigger and, when open, the popover below it.
func (m Model) View() string {
	trigger := m.triggerView()
	if !m.open {
		return trigger
	}
	return lipgloss.JoinVertical(lipgloss.Left, trigger, m.popoverView())
}

func (m Model) triggerView() string {
	label := m.Placeholder
	if m.hasSelected {
		label = m.selected.Label()
	}

	text := calendarIco + " " + label
	if w := m.Width - 4; w > runewidth.StringWidth(text) {
		text = runewidth.FillRight(text, w)
	}

	if !m.hasSelected {
		text = m.Styles.Placeholder.Render(text)
	}

	switch {
	case m.Disabled:
		return m.Styles.TriggerDisabled.Render(text)
	case m.Error:
		return m.Styles.TriggerError.Render(text)
	case m.open:
		return m.Styles.TriggerOpen.Render(text)
	default:
		return m.Styles.Trigger.Render(text)
	}
}

func (m Model) popoverView() string {
	gridWidth := gridColumns * cellWidth

	var sb strings.Builder

	year := lipgloss.PlaceHorizontal(gridWidth-2, lipgloss.Center, m.Styles.Year.Render(strconv.Itoa(m.displayYear)))
	sb.WriteString(m.stepperStyle(m.displayYear > MinYear).Render("‹"))
	sb.WriteString(year)
	sb.WriteString(m.stepperStyle(m.displayYear < MaxYear).Render("›"))
	sb.WriteString("\n\n")

	for i, name := range MonthNames {
		st := m.Styles.Month
		if m.IsSelected(i) {
			st = m.Styles.MonthSelected
		}
		if i == m.cursor {
			st = st.Inherit(m.Styles.MonthCursor)
		}

		sb.WriteString(" ")
		sb.WriteString(st.Render(runewidth.FillRight(name, cellWidth-2)))
		sb.WriteString(" ")

		if (i+1)%gridColumns == 0 && i < len(MonthNames)-1 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.help.ShortHelpView(m.KeyMap.ShortHelp()))

	return m.Styles.Popover.Render(sb.String())
}

func (m Model) stepperStyle(enabled bool) lipgloss.Style {
	if enabled {
		return m.Styles.Stepper
	}
	return m.Styles.StepperDisabled
}
