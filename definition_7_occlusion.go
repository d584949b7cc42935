package gantt

import (
	"fmt"
	"sort"
)

// Occlusion reports two bars sharing a panel lane over an overlapping time.
// Visible was emitted later and is drawn over Hidden.
type Occlusion struct {
	Overlap TimeInterval

	Hidden  int
	Visible int
}

func (o Occlusion) String() string {
	return fmt.Sprintf(
		"instruction %d hides instruction %d over %s",
		o.Visible,
		o.Hidden,
		o.Overlap,
	)
}

type laneKey struct {
	panel int
	lane  int
}

// Occlusions lists the overlapping bars of a layout. Instruction indexes
// refer to layout.Instructions. Nothing is rejected, the report is informational.
func Occlusions(layout *Layout) []Occlusion {
	perLane := make(map[laneKey][]int)

	for ix, instruction := range layout.Instructions {
		key := laneKey{
			panel: instruction.Panel,
			lane:  instruction.Lane,
		}

		perLane[key] = append(perLane[key], ix)
	}

	var result []Occlusion

	for _, indexes := range perLane {
		for i, earlier := range indexes {
			for _, later := range indexes[i+1:] {
				first := layout.Instructions[earlier].Interval
				second := layout.Instructions[later].Interval

				if !first.Overlaps(second) {
					continue
				}

				result = append(
					result,
					Occlusion{
						Hidden:  earlier,
						Visible: later,
						Overlap: TimeInterval{
							TimeStart: max(first.TimeStart, second.TimeStart),
							TimeEnd:   min(first.TimeEnd, second.TimeEnd),
						},
					},
				)
			}
		}
	}

	sort.Slice(
		result,
		func(i, j int) bool {
			if result[i].Hidden != result[j].Hidden {
				return result[i].Hidden < result[j].Hidden
			}

			return result[i].Visible < result[j].Visible
		},
	)

	return result
}
