package gantt

import (
	"fmt"
	"strings"
)

type PanelUsage struct {
	Label string

	// BusyUnitTime sums duration over every occupied lane.
	BusyUnitTime float64
	Utilization  float64

	Units int
}

type Summary struct {
	Panels []PanelUsage

	Makespan float64
	Jobs     int
}

// Summarize reports the makespan and how busy each panel is over it.
// References to panels outside the resource list are ignored.
func Summarize(jobs []JobAllocation, resources []Resource) *Summary {
	result := Summary{
		Jobs:   len(jobs),
		Panels: make([]PanelUsage, len(resources)),
	}

	for ix, res := range resources {
		result.Panels[ix] = PanelUsage{
			Label: fmt.Sprintf("Resource %d", ix+1),
			Units: res.Units,
		}
	}

	for _, job := range jobs {
		result.Makespan = max(result.Makespan, job.Interval().TimeEnd)

		for k, panel := range job.ResourceIDs {
			if panel < 0 || panel >= len(resources) || k >= len(job.UnitsMap) {
				continue
			}

			result.Panels[panel].BusyUnitTime = result.Panels[panel].BusyUnitTime +
				job.Duration*float64(len(job.UnitsMap[k]))
		}
	}

	if result.Makespan > 0 {
		for ix := range result.Panels {
			capacity := float64(result.Panels[ix].Units) * result.Makespan

			result.Panels[ix].Utilization = ternary(
				capacity > 0,
				result.Panels[ix].BusyUnitTime/capacity,
				0,
			)
		}
	}

	return &result
}

func (s *Summary) String() string {
	var sb strings.Builder

	sb.WriteString(
		fmt.Sprintf("Jobs: %d, Makespan: %g\n", s.Jobs, s.Makespan),
	)

	for _, panel := range s.Panels {
		sb.WriteString(
			fmt.Sprintf(
				"- %s (%d units): busy %g unit-time, utilization %.1f%%\n",

				panel.Label,
				panel.Units,
				panel.BusyUnitTime,
				panel.Utilization*100,
			),
		)
	}

	return sb.String()
}
