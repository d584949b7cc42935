package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/TudorHulban/gantt"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestTerminalRender(t *testing.T) {
	var buffer bytes.Buffer

	terminal := NewTerminal(&buffer)
	terminal.Columns = 16

	require.NoError(t,
		terminal.Render(context.Background(), twoPanelChart(t)),
	)

	output := buffer.String()

	require.Contains(t, output, gantt.DefaultTitle)
	require.Contains(t, output, "Resource 1")
	require.Contains(t, output, "Resource 2")
	require.Equal(t, 1, strings.Count(output, gantt.DefaultTimeLabel))

	lines := strings.Split(output, "\n")

	var laneRows []string

	for _, line := range lines {
		if strings.Contains(line, "│") {
			laneRows = append(laneRows, line)
		}
	}

	require.Len(t, laneRows, 3, "two lanes then one lane")
	require.True(t, strings.HasPrefix(laneRows[0], " 1 │"))
	require.True(t, strings.HasPrefix(laneRows[1], " 0 │"))
	require.True(t, strings.HasPrefix(laneRows[2], " 0 │"))

	// time span [0, 8) over 16 columns: job 0 takes 10 columns, job 1 six.
	require.Equal(t, " 1 │    0       1   ", laneRows[0])
	require.Equal(t, " 0 │    0     ······", laneRows[1])
	require.Equal(t, " 0 │··········  1   ", laneRows[2])
}

func TestFillGridLastEmittedWins(t *testing.T) {
	panel := gantt.Panel{Units: 1}
	axis := newTimeAxis(gantt.TimeInterval{TimeStart: 0, TimeEnd: 10}, 10)

	grid := fillGrid(
		panel,
		[]gantt.DrawInstruction{
			{Label: "1", Lane: 0, Interval: gantt.NewTimeInterval(0, 10)},
			{Label: "2", Lane: 0, Interval: gantt.NewTimeInterval(0, 4)},
			{Label: "3", Lane: 5, Interval: gantt.NewTimeInterval(0, 4)},
		},
		axis,
		10,
	)

	var row strings.Builder

	for _, c := range grid[0] {
		row.WriteRune(c.char)
	}

	require.Equal(t, " 2  1     ", row.String())
}

func TestViewer(t *testing.T) {
	model := newViewer("Chart", "line 1\nline 2")

	require.Equal(t, "line 1\nline 2", model.View(), "content shown before sizing")

	_, cmd := model.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	require.Nil(t, cmd)
	require.True(t, model.ready)
	require.Contains(t, model.View(), "line 2")
	require.Contains(t, model.View(), "q quit")

	_, cmdQuit := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmdQuit)
	require.Equal(t, tea.Quit(), cmdQuit())
}

func TestTerminalDrawPlain(t *testing.T) {
	var buffer bytes.Buffer

	drawn := NewTerminal(&buffer).Draw(lipgloss.NewRenderer(&buffer), twoPanelChart(t))

	require.NotContains(t, drawn, "\x1b[", "no escape codes without a terminal")
	require.Zero(t, buffer.Len(), "Draw does not write")
}
