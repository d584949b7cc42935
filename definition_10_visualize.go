package gantt

import (
	"context"
	"fmt"
	"io"

	goerrors "github.com/TudorHulban/go-errors"
)

type ParamsPrepareChart struct {
	Trace io.Writer

	JobsSource      string
	ResourcesSource string
	Title           string
	TimeLabel       string

	// Seed nil selects DefaultSeed. Zero is a valid seed.
	Seed *int64

	SkipInvalid bool
}

func (params *ParamsPrepareChart) withDefaults() ParamsPrepareChart {
	result := *params

	result.JobsSource = ternary(len(result.JobsSource) == 0, DefaultJobsSource, result.JobsSource)
	result.ResourcesSource = ternary(len(result.ResourcesSource) == 0, DefaultResourcesSource, result.ResourcesSource)
	result.Title = ternary(len(result.Title) == 0, DefaultTitle, result.Title)
	result.TimeLabel = ternary(len(result.TimeLabel) == 0, DefaultTimeLabel, result.TimeLabel)

	if result.Seed == nil {
		seed := DefaultSeed

		result.Seed = &seed
	}

	return result
}

// PrepareChart loads both documents, assigns colors from a source seeded
// for this call only and computes the layout.
func PrepareChart(params *ParamsPrepareChart) (*Chart, error) {
	resolved := params.withDefaults()
	source := NewColorSource(*resolved.Seed)

	defer traceExitWMarker(
		resolved.Trace,
		fmt.Sprintf("%s, seed: %d", resolved.JobsSource, source.Seed()),
	)

	schedule, errLoad := LoadSchedule(
		&ParamsLoadSchedule{
			JobsSource:      resolved.JobsSource,
			ResourcesSource: resolved.ResourcesSource,
			Lenient:         resolved.SkipInvalid,
		},
	)
	if errLoad != nil {
		return nil, errLoad
	}

	layout, errLayout := ComputeLayout(
		&ParamsComputeLayout{
			Jobs:        schedule.Jobs,
			Resources:   schedule.Resources,
			Palette:     AssignColors(source, schedule.Jobs),
			Trace:       resolved.Trace,
			SkipInvalid: resolved.SkipInvalid,
		},
	)
	if errLayout != nil {
		return nil, errLayout
	}

	return &Chart{
			Title:     resolved.Title,
			TimeLabel: resolved.TimeLabel,

			Layout:   layout,
			Schedule: schedule,
		},
		nil
}

type ParamsVisualize struct {
	ParamsPrepareChart

	Renderer Renderer
}

// Visualize runs load, colors, layout and render in sequence.
// Any failure aborts the run before the renderer is called.
func Visualize(ctx context.Context, params *ParamsVisualize) error {
	if params.Renderer == nil {
		return goerrors.ErrValidation{
			Caller: "Visualize",
			Issue: goerrors.ErrNilInput{
				InputName: "Renderer",
			},
		}
	}

	defer traceExit(params.Trace)

	chart, errPrepare := PrepareChart(&params.ParamsPrepareChart)
	if errPrepare != nil {
		return errPrepare
	}

	return params.Renderer.Render(ctx, chart)
}
