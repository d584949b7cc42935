package gantt

import (
	"errors"
	"fmt"
	"slices"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// JobAllocation is a job already placed on the schedule.
// UnitsMap[k] holds the lanes occupied on panel ResourceIDs[k].
type JobAllocation struct {
	UnitsMap    [][]int
	ResourceIDs []int

	StartTime float64
	Duration  float64

	JobID int

	// ModeID is informational, layout does not read it.
	ModeID int
}

type ParamsNewJobAllocation struct {
	UnitsMap    [][]int
	ResourceIDs []int

	StartTime float64
	Duration  float64 `valid:"required"`

	JobID  int
	ModeID int

	// Lenient leaves the units_map and resource_ids length check to CheckAgainst.
	Lenient bool
}

func (param *ParamsNewJobAllocation) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(param); errValidation != nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewJobAllocation",
			Issue: goerrors.ErrNilInput{
				InputName: "Duration",
			},
		}
	}

	if param.JobID < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewJobAllocation",
			Issue: goerrors.ErrNegativeInput{
				InputName: "JobID",
			},
		}
	}

	if param.StartTime < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewJobAllocation",
			Issue: goerrors.ErrNegativeInput{
				InputName: "StartTime",
			},
		}
	}

	if param.Duration < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewJobAllocation",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Duration",
			},
		}
	}

	if !param.Lenient && len(param.UnitsMap) != len(param.ResourceIDs) {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewJobAllocation",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "UnitsMap",
				InputValue: len(param.UnitsMap),
				Issue: fmt.Errorf(
					"units_map has %d entries, resource_ids has %d",
					len(param.UnitsMap),
					len(param.ResourceIDs),
				),
			},
		}
	}

	return nil
}

func NewJobAllocation(params *ParamsNewJobAllocation) (*JobAllocation, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	unitsMap := make([][]int, len(params.UnitsMap))

	for k, units := range params.UnitsMap {
		unitsMap[k] = slices.Clone(units)
	}

	return &JobAllocation{
			JobID:     params.JobID,
			StartTime: params.StartTime,
			Duration:  params.Duration,
			ModeID:    params.ModeID,

			UnitsMap:    unitsMap,
			ResourceIDs: slices.Clone(params.ResourceIDs),
		},
		nil
}

func (job *JobAllocation) Interval() TimeInterval {
	return NewTimeInterval(job.StartTime, job.Duration)
}

// CheckAgainst verifies the job only addresses existing panels and lanes.
func (job *JobAllocation) CheckAgainst(resources []Resource) error {
	if len(job.UnitsMap) != len(job.ResourceIDs) {
		return ErrLayoutValidation{
			JobID: job.JobID,
			Field: "units_map",
			Issue: goerrors.ErrInvalidInput{
				Caller:     "CheckAgainst",
				InputName:  "units_map",
				InputValue: len(job.UnitsMap),
				Issue: fmt.Errorf(
					"length differs from resource_ids length %d",
					len(job.ResourceIDs),
				),
			},
		}
	}

	for k, panel := range job.ResourceIDs {
		if panel < 0 || panel >= len(resources) {
			return ErrLayoutValidation{
				JobID: job.JobID,
				Field: fmt.Sprintf("resource_ids[%d]", k),
				Issue: goerrors.ErrInvalidInput{
					Caller:     "CheckAgainst",
					InputName:  "resource_ids",
					InputValue: panel,
					Issue: fmt.Errorf(
						"panel index outside [0, %d)",
						len(resources),
					),
				},
			}
		}

		for u, lane := range job.UnitsMap[k] {
			if !resources[panel].HasLane(lane) {
				return ErrLayoutValidation{
					JobID: job.JobID,
					Field: fmt.Sprintf("units_map[%d][%d]", k, u),
					Issue: goerrors.ErrInvalidInput{
						Caller:     "CheckAgainst",
						InputName:  "units_map",
						InputValue: lane,
						Issue: fmt.Errorf(
							"unit outside [0, %d) of panel %d",
							resources[panel].Units,
							panel,
						),
					},
				}
			}
		}
	}

	return nil
}

// ValidateSchedule checks every job against the resources and
// returns all violations joined, nil when the schedule is drawable.
func ValidateSchedule(jobs []JobAllocation, resources []Resource) error {
	var errs []error

	for ix := range jobs {
		if errCheck := jobs[ix].CheckAgainst(resources); errCheck != nil {
			errs = append(errs, errCheck)
		}
	}

	return errors.Join(errs...)
}
