package commands

import (
	"context"

	"github.com/TudorHulban/gantt"
	"github.com/TudorHulban/gantt/internal/printer"
)

// reportingRenderer prints what the chart hides before handing it on.
type reportingRenderer struct {
	next    gantt.Renderer
	printer *printer.Printer

	showSummary bool
}

func (r *reportingRenderer) Render(ctx context.Context, chart *gantt.Chart) error {
	r.printer.Info(
		"%d jobs on %d resources, %d bars\n",
		len(chart.Schedule.Jobs),
		len(chart.Layout.Panels),
		len(chart.Layout.Instructions),
	)

	for _, rejected := range chart.Layout.Rejected {
		r.printer.Warning("skipped %v\n", rejected)
	}

	for _, occlusion := range chart.Occlusions() {
		hidden := chart.Layout.Instructions[occlusion.Hidden]
		visible := chart.Layout.Instructions[occlusion.Visible]

		r.printer.Warning(
			"job %d hides job %d on %s lane %d over %s\n",
			visible.JobID,
			hidden.JobID,
			chart.Layout.Panels[hidden.Panel].Label,
			hidden.Lane,
			occlusion.Overlap,
		)
	}

	if r.showSummary {
		r.printer.Info("%s", chart.Summary())
	}

	return r.next.Render(ctx, chart)
}
