package blas

import (
	"sync"

	"github.com/cwbudde/algo-blas/internal/kernel"
)

// kernelSet binds the resolved kernel entry points for one element kind.
// One set exists per kind; fields mirror the operation families. rot is nil
// for complex kinds (unreachable: Rot is constrained to Real).
type kernelSet[T Elem] struct {
	copy  func(n int, x []T, incX int, y []T, incY int)
	swap  func(n int, x []T, incX int, y []T, incY int)
	scal  func(n int, alpha T, x []T, incX int)
	axpy  func(n int, alpha T, x []T, incX int, y []T, incY int)
	dotu  func(n int, x []T, incX int, y []T, incY int) T
	dotc  func(n int, x []T, incX int, y []T, incY int) T
	asum  func(n int, x []T, incX int) T
	nrm2  func(n int, x []T, incX int) T
	iamax func(n int, x []T, incX int) int
	rot   func(n int, x []T, incX int, y []T, incY int, c, s T)
}

var (
	bindOnce sync.Once

	real32Set  kernelSet[float32]
	real64Set  kernelSet[float64]
	cplx64Set  kernelSet[complex64]
	cplx128Set kernelSet[complex128]
)

// bind populates the per-kind sets from the active entry-point table.
//
// Real kinds bind dotc to the same entry point as dotu, so conjugated and
// plain dot are observably identical for them. Complex kinds bind distinct
// dotu/dotc entry points, and wrap the real-valued asum/nrm2 results into a
// zero-imaginary scalar of their own kind.
func bind() {
	t := kernel.Active()

	real32Set = kernelSet[float32]{
		copy:  t.Scopy,
		swap:  t.Sswap,
		scal:  t.Sscal,
		axpy:  t.Saxpy,
		dotu:  t.Sdot,
		dotc:  t.Sdot, // conjugation is the identity for real kinds
		asum:  t.Sasum,
		nrm2:  t.Snrm2,
		iamax: t.Isamax,
		rot:   t.Srot,
	}

	real64Set = kernelSet[float64]{
		copy:  t.Dcopy,
		swap:  t.Dswap,
		scal:  t.Dscal,
		axpy:  t.Daxpy,
		dotu:  t.Ddot,
		dotc:  t.Ddot,
		asum:  t.Dasum,
		nrm2:  t.Dnrm2,
		iamax: t.Idamax,
		rot:   t.Drot,
	}

	cplx64Set = kernelSet[complex64]{
		copy: t.Ccopy,
		swap: t.Cswap,
		scal: t.Cscal,
		axpy: t.Caxpy,
		dotu: t.Cdotu,
		dotc: t.Cdotc,
		asum: func(n int, x []complex64, incX int) complex64 {
			return complex(t.Scasum(n, x, incX), 0)
		},
		nrm2: func(n int, x []complex64, incX int) complex64 {
			return complex(t.Scnrm2(n, x, incX), 0)
		},
		iamax: t.Icamax,
	}

	cplx128Set = kernelSet[complex128]{
		copy: t.Zcopy,
		swap: t.Zswap,
		scal: t.Zscal,
		axpy: t.Zaxpy,
		dotu: t.Zdotu,
		dotc: t.Zdotc,
		asum: func(n int, x []complex128, incX int) complex128 {
			return complex(t.Dzasum(n, x, incX), 0)
		},
		nrm2: func(n int, x []complex128, incX int) complex128 {
			return complex(t.Dznrm2(n, x, incX), 0)
		},
		iamax: t.Izamax,
	}
}

// kinds returns the kernel set for the instantiated element kind. The Elem
// type set is closed, so the switch is exhaustive.
func kinds[T Elem]() *kernelSet[T] {
	bindOnce.Do(bind)

	var zero T
	switch any(zero).(type) {
	case float32:
		return any(&real32Set).(*kernelSet[T])
	case float64:
		return any(&real64Set).(*kernelSet[T])
	case complex64:
		return any(&cplx64Set).(*kernelSet[T])
	default:
		return any(&cplx128Set).(*kernelSet[T])
	}
}
