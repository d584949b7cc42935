package printer

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func newTestPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	color.NoColor = true

	var out, errOut bytes.Buffer

	return New(&out, &errOut), &out, &errOut
}

func TestPrinterLines(t *testing.T) {
	p, out, errOut := newTestPrinter()

	p.Success("chart written\n")
	p.Info("panels: %d\n", 2)
	p.Warning("job %d hidden\n", 3)

	require.Equal(t, "✓ chart written\npanels: 2\n", out.String())
	require.Equal(t, "⚠️  job 3 hidden\n", errOut.String())
}

func TestPrinterRunID(t *testing.T) {
	p, out, _ := newTestPrinter()

	p.WithRunID("abc").Info("loaded\n")
	p.Info("untagged\n")

	require.Equal(t, "[abc] loaded\nuntagged\n", out.String())
}

func TestPrinterError(t *testing.T) {
	t.Run(
		"1. single suggestion",
		func(t *testing.T) {
			p, _, errOut := newTestPrinter()

			err := p.Error("load failed", "jobs.json is missing", []string{"pass --jobs"})
			require.EqualError(t, err, "load failed")
			require.Equal(t,
				"load failed\n\njobs.json is missing\n\npass --jobs\n",
				errOut.String(),
			)
		},
	)

	t.Run(
		"2. several suggestions",
		func(t *testing.T) {
			p, _, errOut := newTestPrinter()

			_ = p.Error("invalid", "panel out of range", []string{"fix resource_ids", "pass --skip-invalid"})
			require.Contains(t, errOut.String(), "Either:\n  1. fix resource_ids\n  2. pass --skip-invalid\n")
		},
	)
}
