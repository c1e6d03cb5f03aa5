package blas

// Dot returns the unconjugated inner product sum(x[i]*y[i]) over the first
// min(x.N, y.N) elements. For complex kinds this is the "u" product,
// distinct from the Hermitian form computed by Dotc.
func Dot[T Elem](x, y Vector[T]) T {
	return kinds[T]().dotu(min(x.N, y.N), x.Data, x.Inc, y.Data, y.Inc)
}

// Dotc returns the Hermitian inner product sum(conj(x[i])*y[i]) over the
// first min(x.N, y.N) elements. For real kinds conjugation is the identity
// and Dotc is bound to the same kernel entry point as Dot; for complex kinds
// it is a genuinely distinct kernel.
func Dotc[T Elem](x, y Vector[T]) T {
	return kinds[T]().dotc(min(x.N, y.N), x.Data, x.Inc, y.Data, y.Inc)
}
