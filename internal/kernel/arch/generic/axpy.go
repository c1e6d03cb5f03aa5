package generic

// Saxpy computes y[i] += alpha * x[i] for the first n elements.
// This is the pure Go fallback implementation.
func Saxpy(n int, alpha float32, x []float32, incX int, y []float32, incY int) {
	if n <= 0 || alpha == 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		y[iy] += alpha * x[ix]
		ix += incX
		iy += incY
	}
}

// Daxpy computes y[i] += alpha * x[i] for the first n elements.
func Daxpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	if n <= 0 || alpha == 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		y[iy] += alpha * x[ix]
		ix += incX
		iy += incY
	}
}

// Caxpy computes y[i] += alpha * x[i] for the first n elements.
func Caxpy(n int, alpha complex64, x []complex64, incX int, y []complex64, incY int) {
	if n <= 0 || alpha == 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		y[iy] += alpha * x[ix]
		ix += incX
		iy += incY
	}
}

// Zaxpy computes y[i] += alpha * x[i] for the first n elements.
func Zaxpy(n int, alpha complex128, x []complex128, incX int, y []complex128, incY int) {
	if n <= 0 || alpha == 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		y[iy] += alpha * x[ix]
		ix += incX
		iy += incY
	}
}
