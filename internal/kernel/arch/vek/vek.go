// Package vek provides kernel bindings backed by the viterin/vek SIMD
// library for the real element kinds.
//
// vek operates on contiguous slices, so these bindings take the accelerated
// path only for unit strides and fall back to the generic kernels otherwise.
// Complex kinds are not covered; per-entry-point resolution leaves them to
// lower-priority backends.
package vek

import (
	"math"

	"github.com/chewxy/math32"
	vek64 "github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/cwbudde/algo-blas/internal/kernel/arch/generic"
)

// Sdot returns the dot product of the first n elements: sum(x[i] * y[i]).
func Sdot(n int, x []float32, incX int, y []float32, incY int) float32 {
	if n <= 0 {
		return 0
	}
	if incX == 1 && incY == 1 {
		return vek32.Dot(x[:n], y[:n])
	}
	return generic.Sdot(n, x, incX, y, incY)
}

// Ddot returns the dot product of the first n elements: sum(x[i] * y[i]).
func Ddot(n int, x []float64, incX int, y []float64, incY int) float64 {
	if n <= 0 {
		return 0
	}
	if incX == 1 && incY == 1 {
		return vek64.Dot(x[:n], y[:n])
	}
	return generic.Ddot(n, x, incX, y, incY)
}

// Snrm2 returns the Euclidean norm of the first n elements. vek's plain sum
// of squares can overflow to Inf or flush to zero near the float32 range
// limits; those results are recomputed with the scaled generic kernel so
// every stride agrees on the norm.
func Snrm2(n int, x []float32, incX int) float32 {
	if n <= 0 {
		return 0
	}
	if incX == 1 {
		if s := vek32.Norm(x[:n]); s != 0 && !math32.IsInf(s, 1) {
			return s
		}
	}
	return generic.Snrm2(n, x, incX)
}

// Dnrm2 returns the Euclidean norm of the first n elements. See Snrm2 for
// the range-limit fallback.
func Dnrm2(n int, x []float64, incX int) float64 {
	if n <= 0 {
		return 0
	}
	if incX == 1 {
		if s := vek64.Norm(x[:n]); s != 0 && !math.IsInf(s, 1) {
			return s
		}
	}
	return generic.Dnrm2(n, x, incX)
}

// Sscal scales the first n elements of x in place: x[i] *= alpha.
func Sscal(n int, alpha float32, x []float32, incX int) {
	if n <= 0 {
		return
	}
	if incX == 1 {
		vek32.MulNumber_Inplace(x[:n], alpha)
		return
	}
	generic.Sscal(n, alpha, x, incX)
}

// Dscal scales the first n elements of x in place: x[i] *= alpha.
func Dscal(n int, alpha float64, x []float64, incX int) {
	if n <= 0 {
		return
	}
	if incX == 1 {
		vek64.MulNumber_Inplace(x[:n], alpha)
		return
	}
	generic.Dscal(n, alpha, x, incX)
}
