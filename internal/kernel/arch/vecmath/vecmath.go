// Package vecmath provides float64 kernel bindings backed by the external
// algo-vecmath library, which selects its own SIMD implementation at runtime.
//
// algo-vecmath operates on contiguous slices, so these bindings take the
// accelerated path only for unit strides and fall back to the generic
// kernels otherwise.
package vecmath

import (
	"math"

	vm "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-blas/internal/kernel/arch/generic"
)

// Ddot returns the dot product of the first n elements: sum(x[i] * y[i]).
func Ddot(n int, x []float64, incX int, y []float64, incY int) float64 {
	if n <= 0 {
		return 0
	}
	if incX == 1 && incY == 1 {
		return vm.DotProduct(x[:n], y[:n])
	}
	return generic.Ddot(n, x, incX, y, incY)
}

// Dnrm2 returns the Euclidean norm of the first n elements, computed as
// sqrt(x . x) at unit stride. The plain sum of squares can overflow to Inf
// or flush to zero near the float64 range limits; those results are
// recomputed with the scaled generic kernel so every stride and backend
// agrees on the norm.
func Dnrm2(n int, x []float64, incX int) float64 {
	if n <= 0 {
		return 0
	}
	if incX == 1 {
		if s := math.Sqrt(vm.DotProduct(x[:n], x[:n])); s != 0 && !math.IsInf(s, 1) {
			return s
		}
	}
	return generic.Dnrm2(n, x, incX)
}

// Dscal scales the first n elements of x in place: x[i] *= alpha.
func Dscal(n int, alpha float64, x []float64, incX int) {
	if n <= 0 {
		return
	}
	if incX == 1 {
		vm.ScaleBlockInPlace(x[:n], alpha)
		return
	}
	generic.Dscal(n, alpha, x, incX)
}

// Note: the library exposes no y += alpha*x primitive. Its fused
// AddMulBlock computes (a[i] + b[i]) * scale, which cannot express axpy
// without pre-scaling an operand, so this backend leaves the Daxpy entry
// point unbound and axpy resolves to another backend.
