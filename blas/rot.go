package blas

// Rot applies a planar Givens rotation in place to each corresponding pair
// (x[i], y[i]) for the first min(x.N, y.N) elements:
//
//	x'[i] = c*x[i] + s*y[i]
//	y'[i] = -s*x[i] + c*y[i]
//
// where c and s are the cosine and sine of the rotation angle. Defined for
// real element kinds only; complex planar rotation is not part of the
// contract, which the Real constraint enforces at compile time.
func Rot[T Real](x, y Vector[T], c, s T) {
	kinds[T]().rot(min(x.N, y.N), x.Data, x.Inc, y.Data, y.Inc, c, s)
}
