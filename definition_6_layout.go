package gantt

import (
	"fmt"
	"io"
	"strconv"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/lucasb-eyer/go-colorful"
)

// BarHeight is the bar thickness in lane units, independent of data.
const BarHeight = 0.5

// DrawInstruction is one bar with its label, fully resolved for a renderer.
type DrawInstruction struct {
	Label string

	Interval   TimeInterval
	Color      colorful.Color
	LabelColor colorful.Color

	Panel int
	Lane  int
	JobID int
}

type Panel struct {
	Label string
	Ticks []int

	Index      int
	ResourceID int
	Units      int
}

type Layout struct {
	Panels       []Panel
	Instructions []DrawInstruction

	// Rejected holds the validation errors of jobs left out of the layout
	// when invalid jobs are skipped.
	Rejected []error
}

type ParamsComputeLayout struct {
	Jobs      []JobAllocation
	Resources []Resource `valid:"required"`
	Palette   *Palette   `valid:"required"`
	Trace     io.Writer

	// SkipInvalid drops invalid jobs instead of failing the whole layout.
	SkipInvalid bool
}

func newPanels(resources []Resource) []Panel {
	result := make([]Panel, len(resources))

	for ix, res := range resources {
		result[ix] = Panel{
			Index:      ix,
			ResourceID: res.ID,
			Units:      res.Units,
			Ticks:      res.Ticks(),
			Label:      fmt.Sprintf("Resource %d", ix+1),
		}
	}

	return result
}

func checkJob(job *JobAllocation, resources []Resource, palette *Palette) error {
	if errCheck := job.CheckAgainst(resources); errCheck != nil {
		return errCheck
	}

	if _, exists := palette.ColorOf(job.JobID); !exists {
		return ErrLayoutValidation{
			JobID: job.JobID,
			Field: "job_id",
			Issue: goerrors.ErrInvalidInput{
				Caller:     "ComputeLayout",
				InputName:  "job_id",
				InputValue: job.JobID,
				Issue: fmt.Errorf(
					"no color assigned to job %d",
					job.JobID,
				),
			},
		}
	}

	return nil
}

func appendInstructions(instructions []DrawInstruction, job *JobAllocation, palette *Palette) []DrawInstruction {
	fill, _ := palette.ColorOf(job.JobID)
	labelColor := LabelColor(fill)
	interval := job.Interval()
	label := strconv.Itoa(job.JobID)

	for k, units := range job.UnitsMap {
		for _, lane := range units {
			instructions = append(
				instructions,
				DrawInstruction{
					Panel:    job.ResourceIDs[k],
					Lane:     lane,
					Interval: interval,
					JobID:    job.JobID,

					Color:      fill,
					Label:      label,
					LabelColor: labelColor,
				},
			)
		}
	}

	return instructions
}

// ComputeLayout expands every job into one draw instruction per occupied
// (panel, lane) pair, in job order then units map order.
// Overlapping bars are all emitted, the later one is drawn on top.
// Every job is checked before any instruction is emitted: an invalid job
// fails the whole layout unless SkipInvalid is set.
func ComputeLayout(params *ParamsComputeLayout) (*Layout, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Layout",
				Caller:      "ComputeLayout",
				Issue:       errValidation,
			}
	}

	defer traceExitWMarker(
		params.Trace,
		fmt.Sprintf(
			"jobs: %d, panels: %d, colors: %d",
			len(params.Jobs),
			len(params.Resources),
			params.Palette.Len(),
		),
	)

	drawable := make([]bool, len(params.Jobs))

	var (
		rejected []error
		capacity int
	)

	for ix := range params.Jobs {
		if errCheck := checkJob(&params.Jobs[ix], params.Resources, params.Palette); errCheck != nil {
			if !params.SkipInvalid {
				return nil, errCheck
			}

			rejected = append(rejected, errCheck)

			continue
		}

		drawable[ix] = true

		for _, units := range params.Jobs[ix].UnitsMap {
			capacity = capacity + len(units)
		}
	}

	instructions := make([]DrawInstruction, 0, capacity)

	for ix := range params.Jobs {
		if !drawable[ix] {
			continue
		}

		instructions = appendInstructions(instructions, &params.Jobs[ix], params.Palette)
	}

	return &Layout{
			Panels:       newPanels(params.Resources),
			Instructions: instructions,
			Rejected:     rejected,
		},
		nil
}

// ForPanel returns the instructions addressed to the panel, in emission order.
func (l *Layout) ForPanel(panel int) []DrawInstruction {
	var result []DrawInstruction

	for _, instruction := range l.Instructions {
		if instruction.Panel == panel {
			result = append(result, instruction)
		}
	}

	return result
}

// TimeSpan covers all instructions, zero value for an empty layout.
func (l *Layout) TimeSpan() TimeInterval {
	if len(l.Instructions) == 0 {
		return TimeInterval{}
	}

	result := l.Instructions[0].Interval

	for _, instruction := range l.Instructions[1:] {
		result.TimeStart = min(result.TimeStart, instruction.Interval.TimeStart)
		result.TimeEnd = max(result.TimeEnd, instruction.Interval.TimeEnd)
	}

	return result
}
