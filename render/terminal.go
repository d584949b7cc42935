package render

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/TudorHulban/gantt"
	goerrors "github.com/TudorHulban/go-errors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultColumns = 72

	_GutterWidth = 4
	_EmptyCell   = '·'
)

// Terminal draws every panel as a grid of lanes, one text row per lane,
// highest lane on top. With Interactive set it keeps the chart on screen
// until the user quits.
type Terminal struct {
	Writer io.Writer
	Input  io.Reader

	Columns     int
	Interactive bool
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		Writer:  w,
		Columns: DefaultColumns,
	}
}

type cell struct {
	fill       colorful.Color
	labelColor colorful.Color
	char       rune
	occupied   bool
}

func (t *Terminal) Render(ctx context.Context, chart *gantt.Chart) error {
	if t.Writer == nil {
		return goerrors.ErrValidation{
			Caller: "Render - Terminal",
			Issue: goerrors.ErrNilInput{
				InputName: "Writer",
			},
		}
	}

	if errCtx := ctx.Err(); errCtx != nil {
		return errCtx
	}

	renderer := lipgloss.NewRenderer(t.Writer)
	content := t.Draw(renderer, chart)

	if !t.Interactive {
		_, errWrite := io.WriteString(t.Writer, content)

		return errWrite
	}

	options := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(t.Writer),
		tea.WithAltScreen(),
	}

	if t.Input != nil {
		options = append(options, tea.WithInput(t.Input))
	}

	_, errRun := tea.NewProgram(
		newViewer(chart.Title, content),
		options...,
	).Run()

	return errRun
}

// Draw returns the chart as text, styled through the renderer.
func (t *Terminal) Draw(renderer *lipgloss.Renderer, chart *gantt.Chart) string {
	columns := ternary(t.Columns > 0, t.Columns, DefaultColumns)
	axis := newTimeAxis(chart.Layout.TimeSpan(), float64(columns))

	var sb strings.Builder

	sb.WriteString(
		renderer.NewStyle().
			Bold(true).
			Width(_GutterWidth + columns).
			Align(lipgloss.Center).
			Render(chart.Title),
	)
	sb.WriteString("\n")

	for ix, panel := range chart.Layout.Panels {
		sb.WriteString(
			renderer.NewStyle().Underline(true).Render(panel.Label),
		)
		sb.WriteString("\n")

		grid := fillGrid(panel, chart.Layout.ForPanel(ix), axis, columns)

		for lane := panel.Units - 1; lane >= 0; lane-- {
			sb.WriteString(fmt.Sprintf("%*d │", _GutterWidth-2, lane))
			sb.WriteString(drawRow(renderer, grid[lane]))
			sb.WriteString("\n")
		}

		if chart.IsBottom(ix) {
			sb.WriteString(drawTimeAxis(axis, columns, chart.TimeLabel))
		}
	}

	return sb.String()
}

// fillGrid applies instructions in order so later bars overwrite earlier ones.
func fillGrid(panel gantt.Panel, instructions []gantt.DrawInstruction, axis timeAxis, columns int) [][]cell {
	grid := make([][]cell, panel.Units)

	for lane := range grid {
		grid[lane] = make([]cell, columns)
	}

	for _, instruction := range instructions {
		if instruction.Lane < 0 || instruction.Lane >= panel.Units {
			continue
		}

		first := int(math.Round(axis.position(instruction.Interval.TimeStart)))
		last := int(math.Round(axis.position(instruction.Interval.TimeEnd)))

		first = max(0, min(first, columns-1))
		last = max(first+1, min(last, columns))

		row := grid[instruction.Lane]

		for column := first; column < last; column++ {
			row[column] = cell{
				fill:       instruction.Color,
				labelColor: instruction.LabelColor,
				char:       ' ',
				occupied:   true,
			}
		}

		label := []rune(instruction.Label)
		if len(label) > last-first {
			label = label[:last-first]
		}

		offset := first + (last-first-len(label))/2

		for ix, char := range label {
			row[offset+ix].char = char
		}
	}

	return grid
}

func (c cell) sameStyle(other cell) bool {
	if c.occupied != other.occupied {
		return false
	}

	return !c.occupied || (c.fill == other.fill && c.labelColor == other.labelColor)
}

func drawRow(renderer *lipgloss.Renderer, row []cell) string {
	var sb strings.Builder

	for start := 0; start < len(row); {
		end := start + 1

		for end < len(row) && row[end].sameStyle(row[start]) {
			end++
		}

		var run strings.Builder

		for _, c := range row[start:end] {
			run.WriteRune(
				ternary(c.occupied, c.char, _EmptyCell),
			)
		}

		if row[start].occupied {
			sb.WriteString(
				renderer.NewStyle().
					Background(lipgloss.Color(row[start].fill.Clamped().Hex())).
					Foreground(lipgloss.Color(row[start].labelColor.Hex())).
					Render(run.String()),
			)
		} else {
			sb.WriteString(run.String())
		}

		start = end
	}

	return sb.String()
}

func drawTimeAxis(axis timeAxis, columns int, label string) string {
	gutter := strings.Repeat(" ", _GutterWidth-1)

	marks := []rune(strings.Repeat("─", columns))
	numbers := []rune(strings.Repeat(" ", columns+8))

	for _, tick := range axis.ticks(max(columns/12, 1)) {
		column := min(int(math.Round(axis.position(tick))), columns-1)
		marks[column] = '┬'

		text := []rune(formatTick(tick))
		start := min(column, columns+8-len(text))

		copy(numbers[start:], text)
	}

	return fmt.Sprintf(
		"%s└%s\n%s %s\n%s %s\n",

		gutter,
		string(marks),
		gutter,
		strings.TrimRight(string(numbers), " "),
		gutter,
		lipgloss.PlaceHorizontal(columns, lipgloss.Center, label),
	)
}
