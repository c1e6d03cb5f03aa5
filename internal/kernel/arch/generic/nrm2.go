package generic

import (
	"math"

	"github.com/chewxy/math32"
)

// The nrm2 kernels use the classic scale/ssq formulation so that
// intermediate squares neither overflow nor underflow for inputs whose
// norm is representable.

// ssqStep32 folds |a| into a running (scale, ssq) accumulator pair.
func ssqStep32(scale, ssq, a float32) (float32, float32) {
	if a == 0 {
		return scale, ssq
	}
	a = math32.Abs(a)
	if scale < a {
		r := scale / a
		return a, 1 + ssq*r*r
	}
	r := a / scale
	return scale, ssq + r*r
}

// ssqStep64 folds |a| into a running (scale, ssq) accumulator pair.
func ssqStep64(scale, ssq, a float64) (float64, float64) {
	if a == 0 {
		return scale, ssq
	}
	a = math.Abs(a)
	if scale < a {
		r := scale / a
		return a, 1 + ssq*r*r
	}
	r := a / scale
	return scale, ssq + r*r
}

// Snrm2 returns the Euclidean norm of the first n elements.
// Returns 0 for n <= 0. This is the pure Go fallback implementation.
func Snrm2(n int, x []float32, incX int) float32 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return math32.Abs(x[0])
	}
	var scale float32
	ssq := float32(1)
	ix := 0
	for i := 0; i < n; i++ {
		scale, ssq = ssqStep32(scale, ssq, x[ix])
		ix += incX
	}
	return scale * math32.Sqrt(ssq)
}

// Dnrm2 returns the Euclidean norm of the first n elements.
func Dnrm2(n int, x []float64, incX int) float64 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return math.Abs(x[0])
	}
	scale, ssq := 0.0, 1.0
	ix := 0
	for i := 0; i < n; i++ {
		scale, ssq = ssqStep64(scale, ssq, x[ix])
		ix += incX
	}
	return scale * math.Sqrt(ssq)
}

// Scnrm2 returns the Euclidean norm of the first n elements, treating each
// complex element as a (re, im) pair: sqrt(sum(re^2 + im^2)).
func Scnrm2(n int, x []complex64, incX int) float32 {
	if n <= 0 {
		return 0
	}
	var scale float32
	ssq := float32(1)
	ix := 0
	for i := 0; i < n; i++ {
		v := x[ix]
		scale, ssq = ssqStep32(scale, ssq, real(v))
		scale, ssq = ssqStep32(scale, ssq, imag(v))
		ix += incX
	}
	return scale * math32.Sqrt(ssq)
}

// Dznrm2 returns the Euclidean norm of the first n elements, treating each
// complex element as a (re, im) pair: sqrt(sum(re^2 + im^2)).
func Dznrm2(n int, x []complex128, incX int) float64 {
	if n <= 0 {
		return 0
	}
	scale, ssq := 0.0, 1.0
	ix := 0
	for i := 0; i < n; i++ {
		v := x[ix]
		scale, ssq = ssqStep64(scale, ssq, real(v))
		scale, ssq = ssqStep64(scale, ssq, imag(v))
		ix += incX
	}
	return scale * math.Sqrt(ssq)
}
