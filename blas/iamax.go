package blas

// Iamax returns the 0-based position of the element with the largest
// magnitude: absolute value for real kinds, the L1 proxy |re| + |im| for
// complex kinds (the underlying kernel convention, matching Asum).
//
// Ties resolve to the first occurrence in forward order: the kernel scans
// forward and keeps the first strict improvement.
//
// Precondition: x.N >= 1. The result for an empty vector is unspecified and
// callers must avoid it.
func Iamax[T Elem](x Vector[T]) uint {
	return uint(kinds[T]().iamax(x.N, x.Data, x.Inc))
}
