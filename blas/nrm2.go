package blas

// Nrm2 returns the Euclidean (L2) norm sqrt(sum(|x[i]|^2)) over all x.N
// elements. Complex elements contribute their true modulus.
//
// The return convention matches Asum: real kinds return a plain real scalar,
// complex kinds return the real magnitude embedded in a zero-imaginary
// complex value.
//
// Inputs whose squares would overflow or flush to zero are computed with
// scaled intermediate sums, so the result is finite whenever the true norm
// is representable, on every stride and backend.
func Nrm2[T Elem](x Vector[T]) T {
	return kinds[T]().nrm2(x.N, x.Data, x.Inc)
}
