package gantt

import (
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Resource is one panel of the chart. ID is a cosmetic label,
// panels are addressed by their position in the resource list.
type Resource struct {
	ID    int
	Units int
}

type ParamsNewResource struct {
	ID    int
	Units int `valid:"required"`
}

func (param *ParamsNewResource) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(param); errValidation != nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewResource",
			Issue: goerrors.ErrNilInput{
				InputName: "Units",
			},
		}
	}

	if param.Units < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewResource",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Units",
			},
		}
	}

	return nil
}

func NewResource(params *ParamsNewResource) (*Resource, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &Resource{
			ID:    params.ID,
			Units: params.Units,
		},
		nil
}

// Ticks returns the y axis marks 0..Units inclusive.
func (res Resource) Ticks() []int {
	result := make([]int, res.Units+1)

	for ix := range result {
		result[ix] = ix
	}

	return result
}

func (res Resource) HasLane(lane int) bool {
	return lane >= 0 && lane < res.Units
}

func (res Resource) String() string {
	return fmt.Sprintf(
		"Resource{ID: %d, Units: %d}",
		res.ID,
		res.Units,
	)
}
