package main

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/almanac/pkg/monthpicker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPickModel(t *testing.T, chosen *string) pickModel {
	t.Helper()

	picker := monthpicker.New(
		func(v string) { *chosen = v },
		monthpicker.WithClock(func() time.Time { return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC) }),
	)

	return newPickModel(picker)
}

func TestPickModel_SelectQuits(t *testing.T) {
	var chosen string
	m := newTestPickModel(t, &chosen)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // open
	m = next.(pickModel)
	require.True(t, m.picker.IsOpen())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // select Jan
	m = next.(pickModel)
	assert.Equal(t, "2026-01", chosen)
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, monthpicker.SelectedMsg{Value: "2026-01"}, msg)

	next, cmd = m.Update(msg)
	m = next.(pickModel)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestPickModel_QuitWhenClosed(t *testing.T) {
	var chosen string
	m := newTestPickModel(t, &chosen)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, chosen)
}

func TestPickModel_QIgnoredWhenOpen(t *testing.T) {
	var chosen string
	m := newTestPickModel(t, &chosen)
	m.picker.Open()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.Nil(t, cmd)
	assert.True(t, next.(pickModel).picker.IsOpen())
}

func TestPickModel_CtrlC(t *testing.T) {
	var chosen string
	m := newTestPickModel(t, &chosen)
	m.picker.Open()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestPickModel_WindowSizeSetsWidth(t *testing.T) {
	var chosen string
	m := newTestPickModel(t, &chosen)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 40, next.(pickModel).picker.Width)
}

func TestPickModel_View(t *testing.T) {
	var chosen string
	m := newTestPickModel(t, &chosen)

	view := m.View()
	assert.Contains(t, view, "Pick a month")
	assert.Contains(t, view, monthpicker.DefaultPlaceholder)
	assert.Contains(t, view, "q quit")
}

func TestPrintPicked(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPicked(&buf, "2024-05"))
	assert.Equal(t, "2024-05\n", buf.String())

	assert.Error(t, printPicked(&buf, ""))
}
