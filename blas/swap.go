package blas

// Swap exchanges the first min(x.N, y.N) elements of x and y, respecting
// each vector's own stride. Elements beyond the common length are untouched.
// The operation is symmetric: Swap(x, y) and Swap(y, x) produce identical
// final states.
func Swap[T Elem](x, y Vector[T]) {
	kinds[T]().swap(min(x.N, y.N), x.Data, x.Inc, y.Data, y.Inc)
}
