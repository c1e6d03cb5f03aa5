package blas

// Scal scales x in place: x[i] *= alpha for all x.N elements, traversed by
// x's stride.
//
// Scaling a complex vector by a real factor a is expressed by the caller as
// Scal(complex(a, 0), x); the operation is agnostic to whether the scalar's
// imaginary part is zero.
func Scal[T Elem](alpha T, x Vector[T]) {
	kinds[T]().scal(x.N, alpha, x.Data, x.Inc)
}

// ScalMat scales all x.Rows*x.Cols elements of x in place at unit stride.
func ScalMat[T Elem](alpha T, x Matrix[T]) {
	kinds[T]().scal(x.Rows*x.Cols, alpha, x.Data, 1)
}
