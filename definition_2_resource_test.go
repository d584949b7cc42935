package gantt

import (
	"testing"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/stretchr/testify/require"
)

func TestErrorsResource(t *testing.T) {
	t.Run(
		"1. empty params",
		func(t *testing.T) {
			res, errCr := NewResource(
				&ParamsNewResource{},
			)
			require.Error(t, errCr)
			require.Nil(t, res)
		},
	)

	t.Run(
		"2. negative units",
		func(t *testing.T) {
			res, errCr := NewResource(
				&ParamsNewResource{
					ID:    1,
					Units: -3,
				},
			)
			require.Error(t, errCr)
			require.ErrorAs(t, errCr, &goerrors.ErrValidation{})
			require.Nil(t, res)
		},
	)
}

func TestResource(t *testing.T) {
	res, errCr := NewResource(
		&ParamsNewResource{
			ID:    7,
			Units: 3,
		},
	)
	require.NoError(t, errCr)
	require.NotNil(t, res)

	require.Equal(t,
		[]int{0, 1, 2, 3},
		res.Ticks(),
	)

	require.True(t, res.HasLane(0))
	require.True(t, res.HasLane(2))
	require.False(t, res.HasLane(3))
	require.False(t, res.HasLane(-1))

	require.Equal(t, "Resource{ID: 7, Units: 3}", res.String())
}
