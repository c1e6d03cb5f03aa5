package blas

import "testing"

func TestCopyReal(t *testing.T) {
	cases := []struct {
		name string
		src  []float64
		dst  []float64
		want []float64
	}{
		{name: "equal length", src: []float64{1, -2, 3, 4}, dst: make([]float64, 4), want: []float64{1, -2, 3, 4}},
		{name: "longer source", src: []float64{1, -2, 3, 4, 5}, dst: make([]float64, 3), want: []float64{1, -2, 3}},
		{name: "empty destination", src: []float64{1, 2}, dst: nil, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			Copy(NewVector(tc.src), NewVector(tc.dst))
			if !equalSlices(tc.dst, tc.want) {
				t.Fatalf("Copy() dst = %v, want %v", tc.dst, tc.want)
			}
		})
	}
}

func TestCopyComplex(t *testing.T) {
	src := []complex64{2 - 3i, -1 + 4i}
	dst := make([]complex64, 2)

	Copy(NewVector(src), NewVector(dst))
	if !equalSlices(dst, src) {
		t.Fatalf("Copy() dst = %v, want %v", dst, src)
	}
}

func TestCopyStrided(t *testing.T) {
	// Every second element of src into every third element of dst.
	src := Vector[float64]{Data: []float64{1, 0, 2, 0, 3, 0}, N: 3, Inc: 2}
	backing := []float64{9, 9, 9, 9, 9, 9, 9}
	dst := Vector[float64]{Data: backing, N: 3, Inc: 3}

	Copy(src, dst)
	want := []float64{1, 9, 9, 2, 9, 9, 3}
	if !equalSlices(backing, want) {
		t.Fatalf("Copy() backing = %v, want %v", backing, want)
	}
}

func TestCopyMat(t *testing.T) {
	src := NewMatrix([]float32{1, 2, 3, 4, 5, 6}, 3, 2)
	dst := NewMatrix(make([]float32, 6), 3, 2)

	CopyMat(src, dst)
	if !equalSlices(dst.Data, src.Data) {
		t.Fatalf("CopyMat() dst = %v, want %v", dst.Data, src.Data)
	}
}

func TestCopyMatTruncatesToDestination(t *testing.T) {
	src := NewMatrix([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	dst := NewMatrix([]float64{0, 0, 0, 0}, 2, 2)

	CopyMat(src, dst)
	want := []float64{1, 2, 3, 4}
	if !equalSlices(dst.Data, want) {
		t.Fatalf("CopyMat() dst = %v, want %v", dst.Data, want)
	}
}
