package generic

// Srot applies a planar Givens rotation to the first n element pairs:
// x'[i] = c*x[i] + s*y[i], y'[i] = -s*x[i] + c*y[i].
// This is the pure Go fallback implementation.
func Srot(n int, x []float32, incX int, y []float32, incY int, c, s float32) {
	if n <= 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		vx, vy := x[ix], y[iy]
		x[ix] = c*vx + s*vy
		y[iy] = -s*vx + c*vy
		ix += incX
		iy += incY
	}
}

// Drot applies a planar Givens rotation to the first n element pairs:
// x'[i] = c*x[i] + s*y[i], y'[i] = -s*x[i] + c*y[i].
func Drot(n int, x []float64, incX int, y []float64, incY int, c, s float64) {
	if n <= 0 {
		return
	}
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		vx, vy := x[ix], y[iy]
		x[ix] = c*vx + s*vy
		y[iy] = -s*vx + c*vy
		ix += incX
		iy += incY
	}
}
