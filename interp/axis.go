// Package interp resamples labeled arrays along a single axis.
package interp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"go.ngs.io/climate-tools/domain"
)

// Method selects the 1-D interpolation scheme.
type Method int

const (
	// Linear uses piecewise linear interpolation. NaNs only spread to the
	// segments adjacent to them.
	Linear Method = iota
	// Cubic uses a not-a-knot cubic spline, which reproduces polynomials
	// up to degree three exactly. Axes with fewer than four points fall back
	// to Linear.
	Cubic
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Linspace returns n evenly spaced values from start to end inclusive.
// n == 1 yields [start].
func Linspace(start, end float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	out := floats.Span(make([]float64, n), start, end)
	// Span accumulates rounding error, pin the end point.
	out[n-1] = end
	return out
}

// AlongAxis interpolates a from the coordinate values `from` onto `to` along
// the given axis and returns a new array. The source coordinate values need
// not be ordered; they are sorted together with the data before fitting.
// Repeated coordinate values are an error. Query points outside the source
// range take the value at the nearest edge.
func AlongAxis(a *domain.Array, axis int, from, to []float64, method Method) (*domain.Array, error) {
	shape := a.Shape()
	if axis < 0 || axis >= len(shape) {
		return nil, fmt.Errorf("axis %d out of range for rank %d", axis, len(shape))
	}
	n := shape[axis]
	if len(from) != n {
		return nil, fmt.Errorf("%w: coordinate has %d points, axis %d has %d", domain.ErrShapeMismatch, len(from), axis, n)
	}
	if n == 0 {
		return nil, fmt.Errorf("cannot interpolate along empty axis %d", axis)
	}

	xs, perm, err := orient(from)
	if err != nil {
		return nil, err
	}

	// Not-a-knot needs two interior knots.
	if method == Cubic && n < 4 {
		method = Linear
	}

	outShape := append([]int(nil), shape...)
	outShape[axis] = len(to)
	out := domain.Full(0, outShape...)

	strides := a.Strides()
	outStrides := out.Strides()
	src := a.Data()
	dst := out.Data()

	outer := 1
	for _, s := range shape[:axis] {
		outer *= s
	}
	inner := strides[axis]

	ys := make([]float64, n)
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			base := o*n*inner + in
			for k, idx := range perm {
				ys[k] = src[base+idx*strides[axis]]
			}

			outBase := o*len(to)*inner + in
			if n == 1 {
				for k := range to {
					dst[outBase+k*outStrides[axis]] = ys[0]
				}
				continue
			}

			pred, err := fit(method, xs, ys)
			if err != nil {
				return nil, err
			}
			lo, hi := xs[0], xs[n-1]
			for k, x := range to {
				if x < lo {
					x = lo
				} else if x > hi {
					x = hi
				}
				dst[outBase+k*outStrides[axis]] = pred.Predict(x)
			}
		}
	}

	return out, nil
}

func fit(method Method, xs, ys []float64) (interp.Predictor, error) {
	var p interp.FittablePredictor
	switch method {
	case Cubic:
		p = &interp.NotAKnotCubic{}
	case Linear:
		p = &interp.PiecewiseLinear{}
	default:
		return nil, fmt.Errorf("unsupported interpolation method %v", method)
	}
	if err := p.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("failed to fit %s interpolant: %w", method, err)
	}
	return p, nil
}

// orient returns the coordinate values sorted ascending and the permutation
// that maps sorted positions back to source positions. Values must be
// distinct and not NaN.
func orient(from []float64) ([]float64, []int, error) {
	if floats.HasNaN(from) {
		return nil, nil, fmt.Errorf("coordinate values must not contain NaN")
	}
	xs := append([]float64(nil), from...)
	perm := make([]int, len(xs))
	floats.Argsort(xs, perm)
	for i := 1; i < len(xs); i++ {
		if xs[i] == xs[i-1] {
			return nil, nil, fmt.Errorf("repeated coordinate value %v", xs[i])
		}
	}
	return xs, perm, nil
}
