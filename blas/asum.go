package blas

// Asum returns the sum of element magnitudes over all x.N elements.
//
// For real kinds the magnitude is the absolute value and the result is a
// plain real scalar. For complex kinds the magnitude of each element is the
// L1 proxy |re| + |im| (the underlying kernel convention) and the result is
// a complex scalar carrying the real magnitude with zero imaginary part.
func Asum[T Elem](x Vector[T]) T {
	return kinds[T]().asum(x.N, x.Data, x.Inc)
}
