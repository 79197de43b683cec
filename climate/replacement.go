package climate

import (
	"errors"
	"fmt"

	"go.ngs.io/climate-tools/domain"
)

// MonthlyLevels is the length of the axis rank-4 sources are broadcast over
// when they replace rank-5 variables.
const MonthlyLevels = 13

// broadcastAxis is where the MonthlyLevels axis is inserted.
const broadcastAxis = 2

// payload is the value a replacement writes: either a scalar or an array.
type payload struct {
	scalar float64
	array  *domain.Array
}

// replacement is one of rank4Replacement, rank5Replacement or
// unsupportedReplacement, picked once per variable by classify.
type replacement interface {
	apply(v *domain.Variable) error
}

// rank4Replacement fills the variable with a scalar, or assigns the array
// as is.
type rank4Replacement struct {
	source payload
}

func (r rank4Replacement) apply(v *domain.Variable) error {
	if r.source.array == nil {
		v.Fill(r.source.scalar)
		return nil
	}
	return v.Assign(r.source.array.Clone())
}

// rank5Replacement assigns count copies of a scalar, falling back to a plain
// fill if they do not fit, or broadcasts a rank-4 array over MonthlyLevels.
type rank5Replacement struct {
	source payload
	count  int
}

func (r rank5Replacement) apply(v *domain.Variable) error {
	if r.source.array == nil {
		repeated := make([]float64, r.count)
		for i := range repeated {
			repeated[i] = r.source.scalar
		}
		err := v.AssignFlat(repeated)
		if errors.Is(err, domain.ErrShapeMismatch) {
			v.Fill(r.source.scalar)
			return nil
		}
		return err
	}

	broadcast, err := r.source.array.InsertAxis(broadcastAxis, MonthlyLevels)
	if err != nil {
		return fmt.Errorf("failed to broadcast source over %d levels: %w", MonthlyLevels, err)
	}
	return v.Assign(broadcast)
}

// unsupportedReplacement leaves the variable untouched.
type unsupportedReplacement struct{}

func (unsupportedReplacement) apply(*domain.Variable) error { return nil }

// classify picks the replacement for a variable of the given rank. count is
// the element count of the variable being replaced.
func classify(rank int, source payload, count int) replacement {
	switch rank {
	case 4:
		return rank4Replacement{source: source}
	case 5:
		return rank5Replacement{source: source, count: count}
	default:
		return unsupportedReplacement{}
	}
}
