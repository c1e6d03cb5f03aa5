package blas

import "testing"

func TestNrm2Real(t *testing.T) {
	cases := []struct {
		name string
		x    []float32
		want float32
	}{
		{name: "3-4-5", x: []float32{3, -4}, want: 5},
		{name: "single", x: []float32{-2.5}, want: 2.5},
		{name: "empty", x: nil, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Nrm2(NewVector(tc.x))
			if !closeEnough32(got, tc.want) {
				t.Fatalf("Nrm2() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNrm2Complex(t *testing.T) {
	// True modulus per element, result carried in the real component.
	got := Nrm2(NewVector([]complex64{3 + 4i}))
	if imag(got) != 0 || !closeEnough32(real(got), 5) {
		t.Fatalf("Nrm2() = %v, want (5+0i)", got)
	}
}

func TestNrm2SingleNonzeroMatchesAsum(t *testing.T) {
	// Boundary check only: with at most one nonzero element the L2 norm and
	// the absolute sum coincide. This is not a general law.
	x := []float64{0, 0, -9, 0}
	n := Nrm2(NewVector(x))
	a := Asum(NewVector(x))
	if !closeEnough64(n, a) {
		t.Fatalf("Nrm2() = %v, Asum() = %v, want equal for single-nonzero input", n, a)
	}
}

func TestNrm2ScaledAgainstOverflow(t *testing.T) {
	// Squared elements would overflow float64 (or flush to zero) but the norm
	// itself is representable; unit and non-unit strides must agree.
	strided := Vector[float64]{Data: []float64{3e200, 0, 4e200}, N: 2, Inc: 2}
	got := Nrm2(strided)
	if !closeEnough64(got, 5e200) {
		t.Fatalf("Nrm2() strided = %v, want 5e200", got)
	}

	if unit := Nrm2(NewVector([]float64{3e200, 4e200})); unit != got {
		t.Fatalf("Nrm2() unit = %v, strided = %v, want equal", unit, got)
	}

	tiny := Nrm2(NewVector([]float64{3e-200, 4e-200}))
	if !closeEnough64(tiny, 5e-200) {
		t.Fatalf("Nrm2() tiny = %v, want 5e-200", tiny)
	}
}
