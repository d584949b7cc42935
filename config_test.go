package gantt

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run(
		"1. partial file keeps defaults",
		func(t *testing.T) {
			path := writeFile(t, "gantt.yaml", "title: Shop floor\nseed: 42\nformat: terminal\n")

			cfg, errLoad := LoadConfig(path)
			require.NoError(t, errLoad)

			require.Equal(t, "Shop floor", cfg.Title)
			require.EqualValues(t, 42, cfg.Seed)
			require.Equal(t, FormatTerminal, cfg.Format)
			require.Equal(t, DefaultTimeLabel, cfg.TimeLabel)
			require.Equal(t, DefaultWidth, cfg.Width)
			require.Equal(t, DefaultJobsSource, cfg.JobsSource)

			params := cfg.ParamsPrepareChart()
			require.NotNil(t, params.Seed)
			require.EqualValues(t, 42, *params.Seed)
			require.Equal(t, "Shop floor", params.Title)
		},
	)

	t.Run(
		"2. unknown format",
		func(t *testing.T) {
			path := writeFile(t, "gantt.yaml", "format: png\n")

			cfg, errLoad := LoadConfig(path)
			require.Error(t, errLoad)
			require.Nil(t, cfg)
		},
	)

	t.Run(
		"3. negative width",
		func(t *testing.T) {
			path := writeFile(t, "gantt.yaml", "width: -10\n")

			_, errLoad := LoadConfig(path)
			require.Error(t, errLoad)
		},
	)

	t.Run(
		"4. not yaml",
		func(t *testing.T) {
			path := writeFile(t, "gantt.yaml", "title: [unterminated\n")

			_, errLoad := LoadConfig(path)

			var errMalformed ErrMalformedData
			require.True(t, errors.As(errLoad, &errMalformed))
		},
	)

	t.Run(
		"5. missing file",
		func(t *testing.T) {
			missing := filepath.Join(t.TempDir(), "absent.yaml")

			_, errLoad := LoadConfig(missing)

			var errIO ErrIOUnavailable
			require.True(t, errors.As(errLoad, &errIO))

			cfg, errDefault := LoadConfigOrDefault(missing)
			require.NoError(t, errDefault)
			require.Equal(t, DefaultConfig(), cfg)
		},
	)
}
