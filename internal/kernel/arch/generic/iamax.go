package generic

import (
	"math"

	"github.com/chewxy/math32"
)

// The iamax kernels scan forward and keep the first strict improvement, so
// the lowest index wins on ties. Complex kinds rank elements by the L1 proxy
// |re| + |im|, matching the asum convention. The result for n < 1 is
// unspecified; these implementations return 0.

// Isamax returns the 0-based index of the element with the largest absolute
// value among the first n elements.
func Isamax(n int, x []float32, incX int) int {
	if n < 1 {
		return 0
	}
	best := 0
	max := math32.Abs(x[0])
	ix := incX
	for i := 1; i < n; i++ {
		if v := math32.Abs(x[ix]); v > max {
			max = v
			best = i
		}
		ix += incX
	}
	return best
}

// Idamax returns the 0-based index of the element with the largest absolute
// value among the first n elements.
func Idamax(n int, x []float64, incX int) int {
	if n < 1 {
		return 0
	}
	best := 0
	max := math.Abs(x[0])
	ix := incX
	for i := 1; i < n; i++ {
		if v := math.Abs(x[ix]); v > max {
			max = v
			best = i
		}
		ix += incX
	}
	return best
}

// Icamax returns the 0-based index of the element with the largest
// |re| + |im| magnitude among the first n elements.
func Icamax(n int, x []complex64, incX int) int {
	if n < 1 {
		return 0
	}
	best := 0
	max := math32.Abs(real(x[0])) + math32.Abs(imag(x[0]))
	ix := incX
	for i := 1; i < n; i++ {
		v := x[ix]
		if m := math32.Abs(real(v)) + math32.Abs(imag(v)); m > max {
			max = m
			best = i
		}
		ix += incX
	}
	return best
}

// Izamax returns the 0-based index of the element with the largest
// |re| + |im| magnitude among the first n elements.
func Izamax(n int, x []complex128, incX int) int {
	if n < 1 {
		return 0
	}
	best := 0
	max := math.Abs(real(x[0])) + math.Abs(imag(x[0]))
	ix := incX
	for i := 1; i < n; i++ {
		v := x[ix]
		if m := math.Abs(real(v)) + math.Abs(imag(v)); m > max {
			max = m
			best = i
		}
		ix += incX
	}
	return best
}
