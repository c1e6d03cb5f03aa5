package blas

// Axpy computes y[i] = alpha*x[i] + y[i] in place for the first
// min(x.N, y.N) elements, each vector traversed by its own stride.
// Elements beyond the common length are untouched; mismatched lengths are
// handled by truncation, never rejection.
func Axpy[T Elem](alpha T, x, y Vector[T]) {
	kinds[T]().axpy(min(x.N, y.N), alpha, x.Data, x.Inc, y.Data, y.Inc)
}

// AxpyMat is the flat-matrix variant of Axpy: both operands are treated as
// contiguous unit-stride vectors and the common length is
// min(x.Rows*x.Cols, y.Rows*y.Cols).
func AxpyMat[T Elem](alpha T, x, y Matrix[T]) {
	kinds[T]().axpy(min(x.Rows*x.Cols, y.Rows*y.Cols), alpha, x.Data, 1, y.Data, 1)
}
