// Package blas provides generic level-1 dense-vector operations (copy,
// scaled accumulation, scaling, swap, dot products, magnitude reductions,
// index-of-maximum search and planar rotation) over four element kinds:
// float32, float64, complex64 and complex128.
//
// The package is a dispatch layer, not a kernel library: all arithmetic is
// delegated to kernel backends registered with internal/kernel, selected at
// runtime per entry point based on CPU features. Operands are non-owning
// strided views (Vector, Matrix) over caller-allocated storage.
//
// # Length reconciliation
//
// Binary operations never fail on mismatched lengths: they operate on the
// first min(x.N, y.N) logically-ordered elements of each operand and leave
// the rest untouched. Copy is the exception, keyed off the destination: it
// writes dst.N elements and requires src.N >= dst.N.
//
// # Preconditions
//
// Views assume forward traversal (Inc >= 1) and backing storage of at least
// (N-1)*Inc+1 elements. Violations are caller errors, not signaled faults;
// in practice they surface as runtime bounds-check panics. All operations
// are synchronous and stateless; the caller owns and, where shared,
// synchronizes the backing memory.
//
// # Complex magnitude conventions
//
// Asum and Iamax rank complex elements by |re| + |im| (the reference-BLAS
// scasum/icamax convention); Nrm2 uses the true Euclidean modulus. Asum and
// Nrm2 on complex kinds return the real magnitude embedded in a complex
// value with zero imaginary part, keeping the return type uniform per kind.
package blas
