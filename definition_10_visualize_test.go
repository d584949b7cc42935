package gantt

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	charts []*Chart
}

func (r *recordingRenderer) Render(_ context.Context, chart *Chart) error {
	r.charts = append(r.charts, chart)

	return nil
}

func TestVisualize(t *testing.T) {
	jobsPath := writeFile(t, "jobs.json", jobsDocument)
	resourcesPath := writeFile(t, "resources.json", resourcesDocument)

	renderer := &recordingRenderer{}
	params := ParamsVisualize{
		ParamsPrepareChart: ParamsPrepareChart{
			JobsSource:      jobsPath,
			ResourcesSource: resourcesPath,
		},
		Renderer: renderer,
	}

	require.NoError(t,
		Visualize(context.Background(), &params),
	)
	require.NoError(t,
		Visualize(context.Background(), &params),
	)
	require.Len(t, renderer.charts, 2)

	first := renderer.charts[0]
	require.Equal(t, DefaultTitle, first.Title)
	require.Equal(t, DefaultTimeLabel, first.TimeLabel)
	require.Len(t, first.Layout.Panels, 2)
	require.Len(t, first.Layout.Instructions, 4)
	require.True(t, first.IsBottom(1))
	require.False(t, first.IsBottom(0))

	require.Equal(t,
		first.Layout.Instructions,
		renderer.charts[1].Layout.Instructions,
		"every run reseeds its own color source",
	)

	expected := NewColorSource(DefaultSeed).Draw(2)
	require.Equal(t, expected[1], first.Layout.Instructions[3].Color)

	require.EqualValues(t, 7.5, first.Summary().Makespan)
	require.Empty(t, first.Occlusions())
}

func TestPrepareChartSeed(t *testing.T) {
	jobsPath := writeFile(t, "jobs.json", jobsDocument)
	resourcesPath := writeFile(t, "resources.json", resourcesDocument)

	prepare := func(t *testing.T, seed *int64, trace *bytes.Buffer) *Chart {
		t.Helper()

		chart, errPrepare := PrepareChart(
			&ParamsPrepareChart{
				Trace:           trace,
				JobsSource:      jobsPath,
				ResourcesSource: resourcesPath,
				Seed:            seed,
			},
		)
		require.NoError(t, errPrepare)

		return chart
	}

	t.Run(
		"1. no seed selects the default",
		func(t *testing.T) {
			var trace bytes.Buffer

			chart := prepare(t, nil, &trace)

			require.Equal(t,
				NewColorSource(DefaultSeed).Draw(2)[1],
				chart.Layout.Instructions[3].Color,
			)
			require.Contains(t, trace.String(), "seed: 19680801")
		},
	)

	t.Run(
		"2. zero is honored",
		func(t *testing.T) {
			var (
				trace bytes.Buffer
				zero  int64
			)

			chart := prepare(t, &zero, &trace)

			require.Equal(t,
				NewColorSource(0).Draw(2)[1],
				chart.Layout.Instructions[3].Color,
			)
			require.NotEqual(t,
				NewColorSource(DefaultSeed).Draw(2)[1],
				chart.Layout.Instructions[3].Color,
			)
			require.Contains(t, trace.String(), "seed: 0")
		},
	)
}

func TestVisualizeScenarioB(t *testing.T) {
	jobsPath := writeFile(t, "jobs.json",
		`{"jobs": [{"job_id": 0, "start_time": 0, "duration": 1, "mode_id": 0, "units_map": [[0]], "resource_ids": [2]}]}`,
	)
	resourcesPath := writeFile(t, "resources.json",
		`{"resources": [{"id": 1, "units": 1}, {"id": 2, "units": 1}]}`,
	)

	renderer := &recordingRenderer{}

	errVisualize := Visualize(
		context.Background(),
		&ParamsVisualize{
			ParamsPrepareChart: ParamsPrepareChart{
				JobsSource:      jobsPath,
				ResourcesSource: resourcesPath,
			},
			Renderer: renderer,
		},
	)

	var errValidation ErrLayoutValidation
	require.True(t, errors.As(errVisualize, &errValidation))
	require.Equal(t, 0, errValidation.JobID)
	require.Empty(t, renderer.charts, "nothing is rendered")
}

func TestPrepareChartSkipInvalidLengthMismatch(t *testing.T) {
	jobsPath := writeFile(t, "jobs.json",
		`{"jobs": [
    {"job_id": 0, "start_time": 0, "duration": 1, "mode_id": 0, "units_map": [[0]], "resource_ids": [0]},
    {"job_id": 1, "start_time": 0, "duration": 1, "mode_id": 0, "units_map": [[0], [0]], "resource_ids": [1]}
]}`,
	)
	resourcesPath := writeFile(t, "resources.json", resourcesDocument)

	chart, errPrepare := PrepareChart(
		&ParamsPrepareChart{
			JobsSource:      jobsPath,
			ResourcesSource: resourcesPath,
			SkipInvalid:     true,
		},
	)
	require.NoError(t, errPrepare)
	require.Len(t, chart.Layout.Instructions, 1)
	require.Len(t, chart.Layout.Rejected, 1)

	var errValidation ErrLayoutValidation
	require.True(t, errors.As(chart.Layout.Rejected[0], &errValidation))
	require.Equal(t, 1, errValidation.JobID)
	require.Equal(t, "units_map", errValidation.Field)

	require.NotPanics(t, func() { chart.Summary() })
}

func TestVisualizeErrors(t *testing.T) {
	t.Run(
		"1. no renderer",
		func(t *testing.T) {
			require.Error(t,
				Visualize(context.Background(), &ParamsVisualize{}),
			)
		},
	)

	t.Run(
		"2. default sources absent from working directory",
		func(t *testing.T) {
			t.Chdir(t.TempDir())

			errVisualize := Visualize(
				context.Background(),
				&ParamsVisualize{
					Renderer: &recordingRenderer{},
				},
			)

			var errIO ErrIOUnavailable
			require.True(t, errors.As(errVisualize, &errIO))
			require.Equal(t, DefaultJobsSource, errIO.Source)
		},
	)

	t.Run(
		"3. default sources are picked up",
		func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)

			require.NoError(t,
				os.WriteFile(filepath.Join(dir, DefaultJobsSource), []byte(jobsDocument), 0o644),
			)
			require.NoError(t,
				os.WriteFile(filepath.Join(dir, DefaultResourcesSource), []byte(resourcesDocument), 0o644),
			)

			renderer := &recordingRenderer{}

			require.NoError(t,
				Visualize(
					context.Background(),
					&ParamsVisualize{
						Renderer: renderer,
					},
				),
			)
			require.Len(t, renderer.charts, 1)
		},
	)
}
