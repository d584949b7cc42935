package gantt

import "context"

const (
	DefaultTitle     = "Gantt Chart"
	DefaultTimeLabel = "Time"
)

// Renderer draws a chart. For each panel it shows the lane ticks 0..units,
// the panel label and gridlines, then every instruction addressed to the
// panel in order. Only the bottom-most panel carries the time label.
type Renderer interface {
	Render(ctx context.Context, chart *Chart) error
}

type Chart struct {
	Title     string
	TimeLabel string

	Layout   *Layout
	Schedule *Schedule
}

func (c *Chart) IsBottom(panel int) bool {
	return panel == len(c.Layout.Panels)-1
}

func (c *Chart) Occlusions() []Occlusion {
	return Occlusions(c.Layout)
}

func (c *Chart) Summary() *Summary {
	return Summarize(c.Schedule.Jobs, c.Schedule.Resources)
}
