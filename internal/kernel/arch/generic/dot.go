package generic

// Sdot returns the dot product of the first n elements: sum(x[i] * y[i]).
// Returns 0 for n <= 0. This is the pure Go fallback implementation.
func Sdot(n int, x []float32, incX int, y []float32, incY int) float32 {
	if n <= 0 {
		return 0
	}
	var sum float32
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		sum += x[ix] * y[iy]
		ix += incX
		iy += incY
	}
	return sum
}

// Ddot returns the dot product of the first n elements: sum(x[i] * y[i]).
func Ddot(n int, x []float64, incX int, y []float64, incY int) float64 {
	if n <= 0 {
		return 0
	}
	sum := 0.0
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		sum += x[ix] * y[iy]
		ix += incX
		iy += incY
	}
	return sum
}

// Cdotu returns the unconjugated complex dot product: sum(x[i] * y[i]).
func Cdotu(n int, x []complex64, incX int, y []complex64, incY int) complex64 {
	if n <= 0 {
		return 0
	}
	var sum complex64
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		sum += x[ix] * y[iy]
		ix += incX
		iy += incY
	}
	return sum
}

// Zdotu returns the unconjugated complex dot product: sum(x[i] * y[i]).
func Zdotu(n int, x []complex128, incX int, y []complex128, incY int) complex128 {
	if n <= 0 {
		return 0
	}
	var sum complex128
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		sum += x[ix] * y[iy]
		ix += incX
		iy += incY
	}
	return sum
}

// Cdotc returns the Hermitian complex dot product: sum(conj(x[i]) * y[i]).
func Cdotc(n int, x []complex64, incX int, y []complex64, incY int) complex64 {
	if n <= 0 {
		return 0
	}
	var sum complex64
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		v := x[ix]
		sum += complex(real(v), -imag(v)) * y[iy]
		ix += incX
		iy += incY
	}
	return sum
}

// Zdotc returns the Hermitian complex dot product: sum(conj(x[i]) * y[i]).
func Zdotc(n int, x []complex128, incX int, y []complex128, incY int) complex128 {
	if n <= 0 {
		return 0
	}
	var sum complex128
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		v := x[ix]
		sum += complex(real(v), -imag(v)) * y[iy]
		ix += incX
		iy += incY
	}
	return sum
}
