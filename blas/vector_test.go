package blas

import "testing"

func TestNewVector(t *testing.T) {
	v := NewVector([]float64{1, 2, 3})
	if v.N != 3 || v.Inc != 1 {
		t.Fatalf("NewVector() N = %d, Inc = %d, want 3, 1", v.N, v.Inc)
	}
}

func TestMatrixFlat(t *testing.T) {
	m := NewMatrix([]float64{1, 2, 3, 4, 5, 6}, 2, 3)

	v := m.Flat()
	if v.N != 6 || v.Inc != 1 {
		t.Fatalf("Flat() N = %d, Inc = %d, want 6, 1", v.N, v.Inc)
	}

	// Every vector operation is reachable on a matrix through Flat.
	if got := Asum(v); got != 21 {
		t.Fatalf("Asum(Flat()) = %v, want 21", got)
	}
	if got := Iamax(v); got != 5 {
		t.Fatalf("Iamax(Flat()) = %v, want 5", got)
	}
}

func TestNewMatrixShortStoragePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewMatrix with short storage did not panic")
		}
	}()
	NewMatrix([]float32{1, 2, 3}, 2, 2)
}

func TestZeroLengthIsNoOpEverywhere(t *testing.T) {
	var empty Vector[float64]

	Copy(empty, empty)
	Swap(empty, empty)
	Scal(2, empty)
	Axpy(2, empty, empty)
	Rot(empty, empty, 0, 1)
	if got := Dot(empty, empty); got != 0 {
		t.Fatalf("Dot(empty) = %v, want 0", got)
	}
	if got := Dotc(empty, empty); got != 0 {
		t.Fatalf("Dotc(empty) = %v, want 0", got)
	}
	if got := Asum(empty); got != 0 {
		t.Fatalf("Asum(empty) = %v, want 0", got)
	}
	if got := Nrm2(empty); got != 0 {
		t.Fatalf("Nrm2(empty) = %v, want 0", got)
	}
}
