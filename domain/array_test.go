package domain

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestNewArray_SizeMismatch(t *testing.T) {
	_, err := NewArray([]int{2, 3}, make([]float64, 5))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestArray_AtSetRowMajor(t *testing.T) {
	a, err := NewArray([]int{2, 3}, []float64{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}
	if got := a.At(1, 2); got != 5 {
		t.Errorf("At(1, 2): expected 5, got %v", got)
	}
	a.Set(42, 0, 1)
	if got := a.Data()[1]; got != 42 {
		t.Errorf("Set(42, 0, 1): expected flat[1] = 42, got %v", got)
	}
	strides := a.Strides()
	if strides[0] != 3 || strides[1] != 1 {
		t.Errorf("Strides: expected [3 1], got %v", strides)
	}
}

func TestArray_Item(t *testing.T) {
	tests := []struct {
		name    string
		arr     *Array
		want    float64
		wantErr bool
	}{
		{"rank 0", Scalar(1.5), 1.5, false},
		{"size-1 rank 3", Full(2.5, 1, 1, 1), 2.5, false},
		{"size 2", Full(1, 2), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.arr.Item()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Item() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrNotScalar) {
				t.Fatalf("expected ErrNotScalar, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Item() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArray_InsertAxis(t *testing.T) {
	src, _ := NewArray([]int{2, 2}, []float64{1, 2, 3, 4})

	out, err := src.InsertAxis(1, 3)
	if err != nil {
		t.Fatalf("InsertAxis: %v", err)
	}
	shape := out.Shape()
	if len(shape) != 3 || shape[0] != 2 || shape[1] != 3 || shape[2] != 2 {
		t.Fatalf("expected shape [2 3 2], got %v", shape)
	}
	for i := 0; i < 2; i++ {
		for r := 0; r < 3; r++ {
			for j := 0; j < 2; j++ {
				if out.At(i, r, j) != src.At(i, j) {
					t.Errorf("At(%d, %d, %d) = %v, want %v", i, r, j, out.At(i, r, j), src.At(i, j))
				}
			}
		}
	}

	if _, err := src.InsertAxis(3, 1); err == nil {
		t.Error("expected error for axis beyond rank")
	}
}

func TestArray_Reshape(t *testing.T) {
	a, _ := NewArray([]int{2, 3}, []float64{0, 1, 2, 3, 4, 5})
	b, err := a.Reshape(3, 2)
	if err != nil {
		t.Fatalf("Reshape: %v", err)
	}
	if s := b.Shape(); s[0] != 3 || s[1] != 2 {
		t.Fatalf("expected shape [3 2], got %v", s)
	}
	if b.At(1, 0) != 2 || b.At(2, 1) != 5 {
		t.Errorf("expected row-major layout to survive, got %v", b.Data())
	}
	b.Set(9, 0, 0)
	if a.At(0, 0) != 0 {
		t.Errorf("reshaped array shares storage with original")
	}
	if _, err := a.Reshape(4, 2); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestArray_CloneIsIndependent(t *testing.T) {
	a := Full(1, 2, 2)
	c := a.Clone()
	c.Set(9, 0, 0)
	if a.At(0, 0) != 1 {
		t.Errorf("clone shares storage with original")
	}
	if !floats.Same(a.Clone().Data(), a.Data()) {
		t.Errorf("clone differs from original")
	}
	if a.HasNaN() {
		t.Errorf("unexpected NaN")
	}
	c.Set(math.NaN(), 1, 1)
	if !c.HasNaN() {
		t.Errorf("expected NaN to be detected")
	}
}
