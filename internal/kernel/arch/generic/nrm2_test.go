package generic

import (
	"math"
	"testing"
)

func TestDnrm2AvoidsIntermediateOverflow(t *testing.T) {
	// Squares overflow float64, the norm does not.
	x := []float64{3e200, 4e200}
	got := Dnrm2(2, x, 1)
	want := 5e200
	if math.Abs(got-want)/want > 1e-14 {
		t.Fatalf("Dnrm2() = %v, want %v", got, want)
	}
}

func TestDnrm2AvoidsIntermediateUnderflow(t *testing.T) {
	// Squares flush to zero naively, the norm does not.
	x := []float64{3e-200, 4e-200}
	got := Dnrm2(2, x, 1)
	want := 5e-200
	if math.Abs(got-want)/want > 1e-14 {
		t.Fatalf("Dnrm2() = %v, want %v", got, want)
	}
}

func TestScnrm2UsesTrueModulus(t *testing.T) {
	x := []complex64{3 + 4i}
	if got := Scnrm2(1, x, 1); got != 5 {
		t.Fatalf("Scnrm2() = %v, want 5", got)
	}
}

func TestSnrm2SingleElement(t *testing.T) {
	if got := Snrm2(1, []float32{-2.5}, 1); got != 2.5 {
		t.Fatalf("Snrm2() = %v, want 2.5", got)
	}
}

func TestDzasumL1Convention(t *testing.T) {
	x := []complex128{3 + 4i, -1 - 2i}
	if got := Dzasum(2, x, 1); got != 10 {
		t.Fatalf("Dzasum() = %v, want 10", got)
	}
}
