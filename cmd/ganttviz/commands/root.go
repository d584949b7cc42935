package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/TudorHulban/gantt"
	"github.com/TudorHulban/gantt/internal/printer"
	"github.com/TudorHulban/gantt/render"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "gantt.yaml"

var versionInfo = "dev"

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

type options struct {
	configPath string

	jobs        string
	resources   string
	format      string
	output      string
	seed        int64
	interactive bool
	skipInvalid bool
	summary     bool
	trace       bool
}

// NewRootCmd builds the ganttviz command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ganttviz",
		Short: "Render a resource allocation schedule as a Gantt chart",
		Long: `ganttviz reads a jobs document and a resources document and draws one
panel per resource, one bar per occupied unit lane.

Documents can be JSON or YAML, chosen by file extension. Colors are drawn
from a seeded generator so the same input always gives the same chart.`,
		Version:       versionInfo,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "YAML configuration file, ignored when absent")
	flags.StringVarP(&opts.jobs, "jobs", "j", gantt.DefaultJobsSource, "jobs document")
	flags.StringVarP(&opts.resources, "resources", "r", gantt.DefaultResourcesSource, "resources document")
	flags.StringVarP(&opts.format, "format", "f", gantt.FormatSVG, "output format: svg or terminal")
	flags.StringVarP(&opts.output, "out", "o", "gantt.svg", "SVG output file, - for standard output")
	flags.Int64Var(&opts.seed, "seed", gantt.DefaultSeed, "color generator seed")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "keep the terminal chart open until q is pressed")
	flags.BoolVar(&opts.skipInvalid, "skip-invalid", false, "leave out invalid jobs instead of failing")
	flags.BoolVar(&opts.summary, "summary", false, "print makespan and utilization per resource")
	flags.BoolVar(&opts.trace, "trace", false, "trace the pipeline steps to standard error")

	return cmd
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func resolveConfig(cmd *cobra.Command, opts *options) (*gantt.Config, error) {
	cfg, errLoad := gantt.LoadConfigOrDefault(opts.configPath)
	if errLoad != nil {
		return nil, errLoad
	}

	flags := cmd.Flags()

	if flags.Changed("jobs") {
		cfg.JobsSource = opts.jobs
	}

	if flags.Changed("resources") {
		cfg.ResourcesSource = opts.resources
	}

	if flags.Changed("format") {
		cfg.Format = opts.format
	}

	if flags.Changed("out") {
		cfg.Output = opts.output
	}

	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}

	if flags.Changed("interactive") {
		cfg.Interactive = opts.interactive
	}

	if flags.Changed("skip-invalid") {
		cfg.SkipInvalid = opts.skipInvalid
	}

	if errValidation := cfg.IsValid(); errValidation != nil {
		return nil, errValidation
	}

	return cfg, nil
}

func run(cmd *cobra.Command, opts *options) error {
	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr()).
		WithRunID(uuid.NewString()[:8])

	cfg, errConfig := resolveConfig(cmd, opts)
	if errConfig != nil {
		return p.Error(
			"Invalid configuration",
			errConfig.Error(),
			[]string{"check " + opts.configPath + " and the command flags"},
		)
	}

	renderer, closeOutput := newRenderer(cmd, cfg)

	params := gantt.ParamsVisualize{
		ParamsPrepareChart: cfg.ParamsPrepareChart(),

		Renderer: &reportingRenderer{
			next:        renderer,
			printer:     p,
			showSummary: opts.summary,
		},
	}

	if opts.trace {
		params.Trace = cmd.ErrOrStderr()
	}

	errVisualize := gantt.Visualize(cmd.Context(), &params)

	if errClose := closeOutput(); errClose != nil && errVisualize == nil {
		errVisualize = errClose
	}

	if errVisualize != nil {
		return explain(p, errVisualize)
	}

	p.Success(
		"chart rendered (%s)\n",
		ternary(cfg.Format == gantt.FormatSVG, cfg.Output, gantt.FormatTerminal),
	)

	return nil
}

func newRenderer(cmd *cobra.Command, cfg *gantt.Config) (gantt.Renderer, func() error) {
	noClose := func() error { return nil }

	if cfg.Format == gantt.FormatTerminal {
		return &render.Terminal{
				Writer:      cmd.OutOrStdout(),
				Input:       cmd.InOrStdin(),
				Columns:     max(cfg.Width/12, render.DefaultColumns),
				Interactive: cfg.Interactive,
			},
			noClose
	}

	var (
		w       io.Writer = cmd.OutOrStdout()
		closeFn           = noClose
	)

	if cfg.Output != "-" {
		output := newOutputFile(cfg.Output)

		w = output
		closeFn = output.Close
	}

	return &render.SVG{
			Writer:      w,
			Width:       cfg.Width,
			PanelHeight: cfg.PanelHeight,
		},
		closeFn
}

func explain(p *printer.Printer, err error) error {
	var (
		errIO         gantt.ErrIOUnavailable
		errMalformed  gantt.ErrMalformedData
		errValidation gantt.ErrLayoutValidation
		errOutput     errOutputUnavailable
	)

	switch {
	case errors.As(err, &errOutput):
		return p.Error(
			"Cannot open output",
			err.Error(),
			[]string{"check the path given with --out"},
		)

	case errors.As(err, &errIO):
		return p.Error(
			"Input unavailable",
			err.Error(),
			[]string{"check the path given with --jobs or --resources"},
		)

	case errors.As(err, &errMalformed):
		return p.Error(
			"Malformed input",
			err.Error(),
			[]string{"fix field " + errMalformed.Field + " of the " + errMalformed.Document + " document"},
		)

	case errors.As(err, &errValidation):
		return p.Error(
			"Schedule does not fit the resources",
			err.Error(),
			[]string{
				"fix resource_ids or units_map of the reported jobs",
				"pass --skip-invalid to draw the valid jobs only",
			},
		)
	}

	return p.Error("Visualization failed", err.Error(), nil)
}

func ternary[T any](condition bool, value1, value2 T) T {
	if condition {
		return value1
	}

	return value2
}
