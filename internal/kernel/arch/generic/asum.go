package generic

import (
	"math"

	"github.com/chewxy/math32"
)

// Sasum returns the sum of absolute values of the first n elements.
// Returns 0 for n <= 0. This is the pure Go fallback implementation.
func Sasum(n int, x []float32, incX int) float32 {
	if n <= 0 {
		return 0
	}
	var sum float32
	ix := 0
	for i := 0; i < n; i++ {
		sum += math32.Abs(x[ix])
		ix += incX
	}
	return sum
}

// Dasum returns the sum of absolute values of the first n elements.
func Dasum(n int, x []float64, incX int) float64 {
	if n <= 0 {
		return 0
	}
	sum := 0.0
	ix := 0
	for i := 0; i < n; i++ {
		sum += math.Abs(x[ix])
		ix += incX
	}
	return sum
}

// Scasum returns the sum of element magnitudes of the first n elements,
// where the magnitude of each element is the L1 proxy |re| + |im|.
func Scasum(n int, x []complex64, incX int) float32 {
	if n <= 0 {
		return 0
	}
	var sum float32
	ix := 0
	for i := 0; i < n; i++ {
		v := x[ix]
		sum += math32.Abs(real(v)) + math32.Abs(imag(v))
		ix += incX
	}
	return sum
}

// Dzasum returns the sum of element magnitudes of the first n elements,
// where the magnitude of each element is the L1 proxy |re| + |im|.
func Dzasum(n int, x []complex128, incX int) float64 {
	if n <= 0 {
		return 0
	}
	sum := 0.0
	ix := 0
	for i := 0; i < n; i++ {
		v := x[ix]
		sum += math.Abs(real(v)) + math.Abs(imag(v))
		ix += incX
	}
	return sum
}
