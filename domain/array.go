// Package domain holds the labeled-array data model shared by the resampler
// and the replacer.
package domain

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Array is a dense, row-major N-dimensional float64 array.
// A rank-0 array holds a single value.
type Array struct {
	shape []int
	data  []float64
}

// NewArray creates an array of the given shape backed by data.
// The data slice is used as is, not copied.
func NewArray(shape []int, data []float64) (*Array, error) {
	for i, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("negative length %d for axis %d", n, i)
		}
	}
	if size := shapeSize(shape); size != len(data) {
		return nil, fmt.Errorf("%w: shape %v needs %d values, got %d", ErrShapeMismatch, shape, size, len(data))
	}
	return &Array{shape: append([]int(nil), shape...), data: data}, nil
}

// Full returns an array of the given shape with every element set to v.
func Full(v float64, shape ...int) *Array {
	data := make([]float64, shapeSize(shape))
	for i := range data {
		data[i] = v
	}
	return &Array{shape: append([]int(nil), shape...), data: data}
}

// Scalar returns a rank-0 array holding v.
func Scalar(v float64) *Array {
	return &Array{data: []float64{v}}
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return len(a.data)
}

// Data returns the flat, row-major backing slice.
func (a *Array) Data() []float64 {
	return a.data
}

// At returns the element at the given index.
func (a *Array) At(idx ...int) float64 {
	return a.data[a.offset(idx)]
}

// Set stores v at the given index.
func (a *Array) Set(v float64, idx ...int) {
	a.data[a.offset(idx)] = v
}

// Item returns the single value held by a size-1 array of any rank.
func (a *Array) Item() (float64, error) {
	if len(a.data) != 1 {
		return 0, fmt.Errorf("%w: size %d", ErrNotScalar, len(a.data))
	}
	return a.data[0], nil
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return &Array{
		shape: append([]int(nil), a.shape...),
		data:  append([]float64(nil), a.data...),
	}
}

// HasNaN reports whether any element is NaN.
func (a *Array) HasNaN() bool {
	return floats.HasNaN(a.data)
}

// Reshape returns a copy of the array with a new shape of the same size.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	if shapeSize(shape) != len(a.data) {
		return nil, fmt.Errorf("%w: cannot reshape %v into %v", ErrShapeMismatch, a.shape, shape)
	}
	return NewArray(shape, append([]float64(nil), a.data...))
}

// InsertAxis returns a new array with an extra axis of length n at position
// axis. Every slice along the new axis is a copy of a.
func (a *Array) InsertAxis(axis, n int) (*Array, error) {
	if axis < 0 || axis > len(a.shape) {
		return nil, fmt.Errorf("axis %d out of range for rank %d", axis, len(a.shape))
	}
	if n < 0 {
		return nil, fmt.Errorf("negative repeat count %d", n)
	}

	shape := make([]int, 0, len(a.shape)+1)
	shape = append(shape, a.shape[:axis]...)
	shape = append(shape, n)
	shape = append(shape, a.shape[axis:]...)

	// outer blocks are repeated n times each, inner holds one contiguous block.
	outer := shapeSize(a.shape[:axis])
	inner := shapeSize(a.shape[axis:])
	data := make([]float64, 0, outer*n*inner)
	for o := 0; o < outer; o++ {
		block := a.data[o*inner : (o+1)*inner]
		for r := 0; r < n; r++ {
			data = append(data, block...)
		}
	}
	return &Array{shape: shape, data: data}, nil
}

// Strides returns the row-major element strides of the array.
func (a *Array) Strides() []int {
	strides := make([]int, len(a.shape))
	step := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		strides[i] = step
		step *= a.shape[i]
	}
	return strides
}

func (a *Array) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("domain: index of rank %d for array of rank %d", len(idx), len(a.shape)))
	}
	off := 0
	for i, n := range a.shape {
		if idx[i] < 0 || idx[i] >= n {
			panic(fmt.Sprintf("domain: index %d out of range for axis %d of length %d", idx[i], i, n))
		}
		off = off*n + idx[i]
	}
	return off
}

func shapeSize(shape []int) int {
	size := 1
	for _, n := range shape {
		size *= n
	}
	return size
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
