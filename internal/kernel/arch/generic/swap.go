package generic

// Sswap exchanges the first n elements of x and y.
// This is the pure Go fallback implementation.
func Sswap(n int, x []float32, incX int, y []float32, incY int) {
	if n <= 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		x[ix], y[iy] = y[iy], x[ix]
		ix += incX
		iy += incY
	}
}

// Dswap exchanges the first n elements of x and y.
func Dswap(n int, x []float64, incX int, y []float64, incY int) {
	if n <= 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		x[ix], y[iy] = y[iy], x[ix]
		ix += incX
		iy += incY
	}
}

// Cswap exchanges the first n elements of x and y.
func Cswap(n int, x []complex64, incX int, y []complex64, incY int) {
	if n <= 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		x[ix], y[iy] = y[iy], x[ix]
		ix += incX
		iy += incY
	}
}

// Zswap exchanges the first n elements of x and y.
func Zswap(n int, x []complex128, incX int, y []complex128, incY int) {
	if n <= 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		x[ix], y[iy] = y[iy], x[ix]
		ix += incX
		iy += incY
	}
}
