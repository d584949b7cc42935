package render

import (
	"math"

	"github.com/TudorHulban/gantt"
)

// timeAxis maps chart time onto [0, size) device units.
type timeAxis struct {
	start float64
	end   float64
	size  float64
}

// newTimeAxis always includes zero, schedules start at time zero.
func newTimeAxis(span gantt.TimeInterval, size float64) timeAxis {
	start := min(0, span.TimeStart)
	end := max(span.TimeEnd, start+1)

	return timeAxis{
		start: start,
		end:   end,
		size:  size,
	}
}

func (axis timeAxis) position(at float64) float64 {
	return (at - axis.start) / (axis.end - axis.start) * axis.size
}

// ticks returns round values covering the axis, about target of them.
func (axis timeAxis) ticks(target int) []float64 {
	step := niceStep((axis.end - axis.start) / float64(max(target, 1)))

	var result []float64

	for at := math.Ceil(axis.start/step) * step; at <= axis.end+step/1e6; at = at + step {
		result = append(result, at)
	}

	return result
}

func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}

	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))

	for _, factor := range []float64{1, 2, 5} {
		if raw <= factor*magnitude {
			return factor * magnitude
		}
	}

	return 10 * magnitude
}
