package render

import (
	"context"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/TudorHulban/gantt"
	goerrors "github.com/TudorHulban/go-errors"
)

const (
	_MarginLeft   = 80.0
	_MarginRight  = 24.0
	_MarginTop    = 48.0
	_MarginBottom = 56.0
	_PanelGap     = 16.0

	_FontFamily = "DejaVu Sans, Arial, sans-serif"
	_GridColor  = "#d0d0d0"
	_AxisColor  = "#333333"
)

// SVG writes the chart as a standalone SVG document.
type SVG struct {
	Writer io.Writer

	Width       int
	PanelHeight int
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{
		Writer:      w,
		Width:       gantt.DefaultWidth,
		PanelHeight: gantt.DefaultPanelHeight,
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func formatTick(value float64) string {
	return strconv.FormatFloat(value, 'g', 6, 64)
}

type svgPanel struct {
	panel gantt.Panel

	top    float64
	height float64
}

// laneY maps a lane value to a y coordinate, lanes grow upwards.
// The visible range is [-0.5, units+0.5].
func (p svgPanel) laneY(value float64) float64 {
	low := -0.5
	high := float64(p.panel.Units) + 0.5

	return p.top + p.height - (value-low)/(high-low)*p.height
}

func (s *SVG) Render(ctx context.Context, chart *gantt.Chart) error {
	if s.Writer == nil {
		return goerrors.ErrValidation{
			Caller: "Render - SVG",
			Issue: goerrors.ErrNilInput{
				InputName: "Writer",
			},
		}
	}

	if errCtx := ctx.Err(); errCtx != nil {
		return errCtx
	}

	_, errWrite := io.WriteString(s.Writer, s.Document(chart))

	return errWrite
}

// Document builds the SVG text of the chart.
func (s *SVG) Document(chart *gantt.Chart) string {
	width := float64(max(s.Width, 1))
	panelHeight := float64(max(s.PanelHeight, 1))
	plotWidth := max(width-_MarginLeft-_MarginRight, 1)

	numberPanels := len(chart.Layout.Panels)
	height := _MarginTop + _MarginBottom +
		float64(numberPanels)*panelHeight +
		float64(max(numberPanels-1, 0))*_PanelGap

	axis := newTimeAxis(chart.Layout.TimeSpan(), plotWidth)
	ticks := axis.ticks(10)

	var sb strings.Builder

	sb.WriteString(
		fmt.Sprintf(
			`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%s" viewBox="0 0 %d %s" font-family="%s">`+"\n",

			int(width),
			formatNumber(height),
			int(width),
			formatNumber(height),
			_FontFamily,
		),
	)

	sb.WriteString(
		fmt.Sprintf(
			`<rect x="0" y="0" width="%d" height="%s" fill="#ffffff"/>`+"\n",

			int(width),
			formatNumber(height),
		),
	)

	sb.WriteString(
		fmt.Sprintf(
			`<text class="title" x="%s" y="%s" text-anchor="middle" font-size="18">%s</text>`+"\n",

			formatNumber(width/2),
			formatNumber(_MarginTop*0.6),
			html.EscapeString(chart.Title),
		),
	)

	for ix, panel := range chart.Layout.Panels {
		geometry := svgPanel{
			panel:  panel,
			top:    _MarginTop + float64(ix)*(panelHeight+_PanelGap),
			height: panelHeight,
		}

		s.writePanel(&sb, geometry, axis, ticks, plotWidth)

		for _, instruction := range chart.Layout.ForPanel(ix) {
			writeBar(&sb, geometry, axis, instruction)
		}

		if chart.IsBottom(ix) {
			writeTimeAxis(&sb, geometry, axis, ticks, chart.TimeLabel)
		}
	}

	sb.WriteString("</svg>\n")

	return sb.String()
}

func (s *SVG) writePanel(sb *strings.Builder, geometry svgPanel, axis timeAxis, ticks []float64, plotWidth float64) {
	sb.WriteString(
		fmt.Sprintf(
			`<g class="panel" data-panel="%d" data-resource-id="%d">`+"\n",

			geometry.panel.Index,
			geometry.panel.ResourceID,
		),
	)

	sb.WriteString(
		fmt.Sprintf(
			`<rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s"/>`+"\n",

			formatNumber(_MarginLeft),
			formatNumber(geometry.top),
			formatNumber(plotWidth),
			formatNumber(geometry.height),
			_AxisColor,
		),
	)

	for _, tick := range geometry.panel.Ticks {
		y := geometry.laneY(float64(tick))

		sb.WriteString(
			fmt.Sprintf(
				`<line class="grid" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="0.5"/>`+"\n",

				formatNumber(_MarginLeft),
				formatNumber(y),
				formatNumber(_MarginLeft+plotWidth),
				formatNumber(y),
				_GridColor,
			),
		)

		sb.WriteString(
			fmt.Sprintf(
				`<text class="ytick" x="%s" y="%s" text-anchor="end" dominant-baseline="central" font-size="11">%d</text>`+"\n",

				formatNumber(_MarginLeft-6),
				formatNumber(y),
				tick,
			),
		)
	}

	for _, tick := range ticks {
		x := _MarginLeft + axis.position(tick)

		sb.WriteString(
			fmt.Sprintf(
				`<line class="grid" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="0.5"/>`+"\n",

				formatNumber(x),
				formatNumber(geometry.top),
				formatNumber(x),
				formatNumber(geometry.top+geometry.height),
				_GridColor,
			),
		)
	}

	labelX := _MarginLeft - 44
	labelY := geometry.top + geometry.height/2

	sb.WriteString(
		fmt.Sprintf(
			`<text class="ylabel" x="%s" y="%s" text-anchor="middle" font-size="13" transform="rotate(-90 %s %s)">%s</text>`+"\n",

			formatNumber(labelX),
			formatNumber(labelY),
			formatNumber(labelX),
			formatNumber(labelY),
			html.EscapeString(geometry.panel.Label),
		),
	)

	sb.WriteString("</g>\n")
}

func writeBar(sb *strings.Builder, geometry svgPanel, axis timeAxis, instruction gantt.DrawInstruction) {
	x := _MarginLeft + axis.position(instruction.Interval.TimeStart)
	barWidth := axis.position(instruction.Interval.TimeEnd) - axis.position(instruction.Interval.TimeStart)
	top := geometry.laneY(float64(instruction.Lane) + gantt.BarHeight/2)
	bottom := geometry.laneY(float64(instruction.Lane) - gantt.BarHeight/2)

	sb.WriteString(
		fmt.Sprintf(
			`<rect class="bar" data-job="%d" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",

			instruction.JobID,
			formatNumber(x),
			formatNumber(top),
			formatNumber(barWidth),
			formatNumber(bottom-top),
			instruction.Color.Clamped().Hex(),
		),
	)

	sb.WriteString(
		fmt.Sprintf(
			`<text class="label" x="%s" y="%s" text-anchor="middle" dominant-baseline="central" font-size="11" fill="%s">%s</text>`+"\n",

			formatNumber(_MarginLeft+axis.position(instruction.Interval.Middle())),
			formatNumber(geometry.laneY(float64(instruction.Lane))),
			instruction.LabelColor.Hex(),
			html.EscapeString(instruction.Label),
		),
	)
}

func writeTimeAxis(sb *strings.Builder, geometry svgPanel, axis timeAxis, ticks []float64, label string) {
	bottom := geometry.top + geometry.height

	for _, tick := range ticks {
		sb.WriteString(
			fmt.Sprintf(
				`<text class="xtick" x="%s" y="%s" text-anchor="middle" font-size="11">%s</text>`+"\n",

				formatNumber(_MarginLeft+axis.position(tick)),
				formatNumber(bottom+16),
				formatTick(tick),
			),
		)
	}

	sb.WriteString(
		fmt.Sprintf(
			`<text class="xlabel" x="%s" y="%s" text-anchor="middle" font-size="13">%s</text>`+"\n",

			formatNumber(_MarginLeft+axis.size/2),
			formatNumber(bottom+40),
			html.EscapeString(label),
		),
	)
}
