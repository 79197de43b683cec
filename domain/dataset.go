package domain

import (
	"fmt"
	"strings"
)

// Variable is a named N-dimensional array labeled by dimension names.
type Variable struct {
	Name  string
	Dims  []string
	Data  *Array
	Attrs map[string]string
}

// NewVariable creates a variable, checking that dims matches the array rank.
func NewVariable(name string, dims []string, data *Array) (*Variable, error) {
	if len(dims) != data.Rank() {
		return nil, fmt.Errorf("variable %s: %d dimension names for rank %d data", name, len(dims), data.Rank())
	}
	return &Variable{
		Name:  name,
		Dims:  append([]string(nil), dims...),
		Data:  data,
		Attrs: make(map[string]string),
	}, nil
}

// Rank returns the number of dimensions of the variable.
func (v *Variable) Rank() int {
	return v.Data.Rank()
}

// Size returns the total number of elements of the variable.
func (v *Variable) Size() int {
	return v.Data.Size()
}

// Shape returns the shape of the variable's data.
func (v *Variable) Shape() []int {
	return v.Data.Shape()
}

// DimIndex returns the axis of the named dimension, or -1.
func (v *Variable) DimIndex(dim string) int {
	for i, d := range v.Dims {
		if d == dim {
			return i
		}
	}
	return -1
}

// Assign replaces the variable's data. The replacement must have exactly the
// variable's shape.
func (v *Variable) Assign(a *Array) error {
	if !sameShape(v.Data.shape, a.shape) {
		return fmt.Errorf("%w: replacement data %v must match variable %s shape %v",
			ErrShapeMismatch, a.shape, v.Name, v.Data.shape)
	}
	v.Data = a
	return nil
}

// AssignFlat replaces the variable's data with a flat sequence laid out in
// row-major order over the variable's shape.
func (v *Variable) AssignFlat(values []float64) error {
	flat := &Array{shape: []int{len(values)}, data: values}
	data, err := flat.Reshape(v.Data.shape...)
	if err != nil {
		return fmt.Errorf("variable %s: %w", v.Name, err)
	}
	v.Data = data
	return nil
}

// Fill sets every element of the variable to x, keeping its shape.
func (v *Variable) Fill(x float64) {
	v.Data = Full(x, v.Data.shape...)
}

// Clone returns a deep copy of the variable.
func (v *Variable) Clone() *Variable {
	attrs := make(map[string]string, len(v.Attrs))
	for k, val := range v.Attrs {
		attrs[k] = val
	}
	return &Variable{
		Name:  v.Name,
		Dims:  append([]string(nil), v.Dims...),
		Data:  v.Data.Clone(),
		Attrs: attrs,
	}
}

// Coordinate is a 1-D labeled axis such as longitude or latitude.
type Coordinate struct {
	Name   string
	Values []float64
}

// Len returns the number of points on the axis.
func (c *Coordinate) Len() int {
	return len(c.Values)
}

// Dataset is an ordered collection of variables sharing a set of coordinates.
// Variables and coordinates keep insertion order.
type Dataset struct {
	vars   []*Variable
	coords []*Coordinate
	Attrs  map[string]string
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{Attrs: make(map[string]string)}
}

// AddCoord adds or replaces a coordinate.
func (ds *Dataset) AddCoord(name string, values []float64) *Coordinate {
	c := &Coordinate{Name: name, Values: append([]float64(nil), values...)}
	for i, existing := range ds.coords {
		if existing.Name == name {
			ds.coords[i] = c
			return c
		}
	}
	ds.coords = append(ds.coords, c)
	return c
}

// AddVariable adds or replaces a variable.
func (ds *Dataset) AddVariable(v *Variable) {
	for i, existing := range ds.vars {
		if existing.Name == v.Name {
			ds.vars[i] = v
			return
		}
	}
	ds.vars = append(ds.vars, v)
}

// Variable returns the named variable.
func (ds *Dataset) Variable(name string) (*Variable, bool) {
	for _, v := range ds.vars {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Coord returns the named coordinate.
func (ds *Dataset) Coord(name string) (*Coordinate, bool) {
	for _, c := range ds.coords {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Variables returns the variables in insertion order.
func (ds *Dataset) Variables() []*Variable {
	return append([]*Variable(nil), ds.vars...)
}

// Coords returns the coordinates in insertion order.
func (ds *Dataset) Coords() []*Coordinate {
	return append([]*Coordinate(nil), ds.coords...)
}

// VariableNames returns the variable names in insertion order.
func (ds *Dataset) VariableNames() []string {
	names := make([]string, len(ds.vars))
	for i, v := range ds.vars {
		names[i] = v.Name
	}
	return names
}

// FindCoord returns the first coordinate, in insertion order, whose name
// starts with prefix. The match is case-sensitive.
func (ds *Dataset) FindCoord(prefix string) (*Coordinate, error) {
	for _, c := range ds.coords {
		if strings.HasPrefix(c.Name, prefix) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: no coordinate name starts with %q", ErrCoordNotFound, prefix)
}

// HasNaN reports whether any element of any variable is NaN.
func (ds *Dataset) HasNaN() bool {
	for _, v := range ds.vars {
		if v.Data.HasNaN() {
			return true
		}
	}
	return false
}

// Validate checks that every dimension named after a coordinate has the
// coordinate's length.
func (ds *Dataset) Validate() error {
	for _, v := range ds.vars {
		if len(v.Dims) != v.Rank() {
			return fmt.Errorf("variable %s: %d dimension names for rank %d data", v.Name, len(v.Dims), v.Rank())
		}
		for axis, dim := range v.Dims {
			c, ok := ds.Coord(dim)
			if !ok {
				continue
			}
			if n := v.Data.shape[axis]; n != c.Len() {
				return fmt.Errorf("%w: variable %s has %d points along %s, coordinate has %d",
					ErrShapeMismatch, v.Name, n, dim, c.Len())
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the dataset.
func (ds *Dataset) Clone() *Dataset {
	out := NewDataset()
	for k, v := range ds.Attrs {
		out.Attrs[k] = v
	}
	for _, c := range ds.coords {
		out.AddCoord(c.Name, c.Values)
	}
	for _, v := range ds.vars {
		out.vars = append(out.vars, v.Clone())
	}
	return out
}
