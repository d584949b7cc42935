package render

import (
	"testing"

	"github.com/TudorHulban/gantt"
	"github.com/stretchr/testify/require"
)

func newTestChart(t *testing.T, jobs []gantt.JobAllocation, resources []gantt.Resource) *gantt.Chart {
	t.Helper()

	layout, errLayout := gantt.ComputeLayout(
		&gantt.ParamsComputeLayout{
			Jobs:      jobs,
			Resources: resources,
			Palette:   gantt.AssignColors(gantt.NewColorSource(gantt.DefaultSeed), jobs),
		},
	)
	require.NoError(t, errLayout)

	return &gantt.Chart{
		Title:     gantt.DefaultTitle,
		TimeLabel: gantt.DefaultTimeLabel,
		Layout:    layout,
		Schedule: &gantt.Schedule{
			Jobs:      jobs,
			Resources: resources,
		},
	}
}

func twoPanelChart(t *testing.T) *gantt.Chart {
	return newTestChart(
		t,
		[]gantt.JobAllocation{
			{JobID: 0, StartTime: 0, Duration: 5, UnitsMap: [][]int{{0, 1}}, ResourceIDs: []int{0}},
			{JobID: 1, StartTime: 5, Duration: 3, UnitsMap: [][]int{{1}, {0}}, ResourceIDs: []int{0, 1}},
		},
		[]gantt.Resource{
			{ID: 7, Units: 2},
			{ID: 8, Units: 1},
		},
	)
}
