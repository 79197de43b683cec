package domain

import (
	"errors"
	"math"
	"testing"
)

func newTestDataset(t *testing.T) *Dataset {
	t.Helper()
	ds := NewDataset()
	ds.AddCoord("time", []float64{0})
	ds.AddCoord("longitude", []float64{0, 1, 2})
	ds.AddCoord("lon_bnds", []float64{0, 1})
	ds.AddCoord("latitude", []float64{10, 20})

	v, err := NewVariable("sst", []string{"time", "latitude", "longitude"}, Full(1, 1, 2, 3))
	if err != nil {
		t.Fatalf("NewVariable: %v", err)
	}
	ds.AddVariable(v)
	return ds
}

func TestDataset_FindCoordFirstMatchWins(t *testing.T) {
	ds := newTestDataset(t)

	c, err := ds.FindCoord("lon")
	if err != nil {
		t.Fatalf("FindCoord: %v", err)
	}
	if c.Name != "longitude" {
		t.Errorf("expected first match longitude, got %s", c.Name)
	}

	if _, err := ds.FindCoord("Lat"); !errors.Is(err, ErrCoordNotFound) {
		t.Errorf("prefix match must be case-sensitive, got %v", err)
	}
}

func TestDataset_Validate(t *testing.T) {
	ds := newTestDataset(t)
	if err := ds.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	bad, _ := NewVariable("bad", []string{"latitude"}, Full(0, 5))
	ds.AddVariable(bad)
	if err := ds.Validate(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestNewVariable_RankMismatch(t *testing.T) {
	if _, err := NewVariable("x", []string{"a"}, Full(0, 2, 2)); err == nil {
		t.Error("expected error for dims/rank mismatch")
	}
}

func TestVariable_AssignShapeChecks(t *testing.T) {
	v, _ := NewVariable("v", []string{"a", "b"}, Full(0, 2, 3))

	if err := v.Assign(Full(1, 3, 2)); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Assign wrong shape: expected ErrShapeMismatch, got %v", err)
	}
	if err := v.Assign(Scalar(1)); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Assign scalar: expected ErrShapeMismatch, got %v", err)
	}
	if err := v.Assign(Full(7, 2, 3)); err != nil {
		t.Fatalf("Assign same shape: %v", err)
	}
	if v.Data.At(1, 2) != 7 {
		t.Errorf("expected assigned value 7, got %v", v.Data.At(1, 2))
	}

	if err := v.AssignFlat([]float64{1, 2, 3}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("AssignFlat short: expected ErrShapeMismatch, got %v", err)
	}
	values := []float64{1, 2, 3, 4, 5, 6}
	if err := v.AssignFlat(values); err != nil {
		t.Fatalf("AssignFlat: %v", err)
	}
	if v.Data.At(1, 0) != 4 {
		t.Errorf("AssignFlat must lay values out row-major, got %v", v.Data.At(1, 0))
	}
	if s := v.Shape(); s[0] != 2 || s[1] != 3 {
		t.Errorf("AssignFlat must keep shape, got %v", s)
	}
	values[0] = -1
	if v.Data.At(0, 0) != 1 {
		t.Errorf("AssignFlat must copy its input, got %v", v.Data.At(0, 0))
	}

	v.Fill(math.Pi)
	for _, x := range v.Data.Data() {
		if x != math.Pi {
			t.Fatalf("Fill: expected every element to be pi, got %v", x)
		}
	}
	if s := v.Shape(); s[0] != 2 || s[1] != 3 {
		t.Errorf("Fill must keep shape, got %v", s)
	}
}

func TestDataset_CloneAndHasNaN(t *testing.T) {
	ds := newTestDataset(t)
	cp := ds.Clone()

	v, _ := cp.Variable("sst")
	v.Data.Set(math.NaN(), 0, 0, 0)
	lon, _ := cp.Coord("longitude")
	lon.Values[0] = -1

	if ds.HasNaN() {
		t.Error("mutating the clone leaked into the original")
	}
	if !cp.HasNaN() {
		t.Error("expected NaN in the clone")
	}
	orig, _ := ds.Coord("longitude")
	if orig.Values[0] != 0 {
		t.Error("clone shares coordinate storage with the original")
	}
}

func TestDataset_AddVariableReplacesByName(t *testing.T) {
	ds := newTestDataset(t)
	other, _ := NewVariable("sst", []string{"time"}, Full(3, 1))
	ds.AddVariable(other)

	names := ds.VariableNames()
	if len(names) != 1 || names[0] != "sst" {
		t.Fatalf("expected a single sst variable, got %v", names)
	}
	got, _ := ds.Variable("sst")
	if got.Rank() != 1 {
		t.Errorf("expected replaced variable of rank 1, got %d", got.Rank())
	}
}
