package generic

// Scopy copies n elements of x into y: y[i] = x[i].
// This is the pure Go fallback implementation.
func Scopy(n int, x []float32, incX int, y []float32, incY int) {
	if n <= 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		y[iy] = x[ix]
		ix += incX
		iy += incY
	}
}

// Dcopy copies n elements of x into y: y[i] = x[i].
func Dcopy(n int, x []float64, incX int, y []float64, incY int) {
	if n <= 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		y[iy] = x[ix]
		ix += incX
		iy += incY
	}
}

// Ccopy copies n elements of x into y: y[i] = x[i].
func Ccopy(n int, x []complex64, incX int, y []complex64, incY int) {
	if n <= 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		y[iy] = x[ix]
		ix += incX
		iy += incY
	}
}

// Zcopy copies n elements of x into y: y[i] = x[i].
func Zcopy(n int, x []complex128, incX int, y []complex128, incY int) {
	if n <= 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		y[iy] = x[ix]
		ix += incX
		iy += incY
	}
}
